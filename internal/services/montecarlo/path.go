package montecarlo

import "RegimeSim/internal/domain/models"

// IsHighVolatilityDay reports whether day falls in the elevated-risk regime:
// exactly one day in every block of 30, at offset 20.
func IsHighVolatilityDay(day int) bool {
	return day%models.HighVolatilityPeriod == models.HighVolatilityOffset
}

// DecideDay draws one day's randomness from src and returns what happens to
// the running value.
//
// Draw order is fixed: the signal first, then the regime's volatility error.
// On a flagged day under the abstain policy only the signal is drawn. The
// volatility error is drawn even when the signal does not clear the
// threshold and is then discarded.
func DecideDay(cfg models.SimulationConfig, day int, src models.Source) models.DayOutcome {
	signal := cfg.Signal().Sample(src)

	var volErr float64
	if IsHighVolatilityDay(day) {
		if !cfg.PlayOnHighVolatility() {
			return models.Abstain()
		}
		volErr = cfg.HighVolatility().Sample(src)
	} else {
		volErr = cfg.NormalVolatility().Sample(src)
	}

	if signal > cfg.SignalThreshold() {
		return models.Apply(1 + signal + volErr)
	}
	return models.Abstain()
}

// SimulateTrial compounds a notional 1.0 over cfg.Steps() days and returns
// the terminal value. Overflow and NaN are not guarded.
func SimulateTrial(cfg models.SimulationConfig, src models.Source) float64 {
	value := 1.0
	for day := 0; day < cfg.Steps(); day++ {
		value = DecideDay(cfg, day, src).Step(value)
	}
	return value
}
