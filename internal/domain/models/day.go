package models

// DayKind tags the outcome of a single simulated day.
type DayKind uint8

const (
	// DayAbstain leaves the running value untouched.
	DayAbstain DayKind = iota
	// DayApply multiplies the running value by the day's return factor.
	DayApply
)

// DayOutcome is either Abstain or Apply(factor).
type DayOutcome struct {
	Kind   DayKind
	Factor float64
}

// Abstain is the outcome of a day on which nothing is traded.
func Abstain() DayOutcome { return DayOutcome{Kind: DayAbstain} }

// Apply is the outcome of a traded day with gross return factor r.
func Apply(r float64) DayOutcome { return DayOutcome{Kind: DayApply, Factor: r} }

// Step advances value by one day.
func (d DayOutcome) Step(value float64) float64 {
	if d.Kind == DayApply {
		return value * d.Factor
	}
	return value
}
