package models

// Source is a private stream of standard normal draws.
// A Source is owned by exactly one worker and is never shared.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	NormFloat64() float64
}

// Normal is a normal distribution N(Mean, StdDev^2).
type Normal struct {
	Mean   float64
	StdDev float64 `validate:"gt=0"`
}

// Sample draws one value from n using src.
func (n Normal) Sample(src Source) float64 {
	return n.Mean + n.StdDev*src.NormFloat64()
}
