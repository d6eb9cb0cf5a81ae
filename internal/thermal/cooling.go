package thermal

import (
	"math"

	"github.com/san-kum/tanklab/internal/series"
)

type Spec struct {
	Ambient  float64 `json:"ambient" yaml:"ambient"`
	Initial  float64 `json:"initial" yaml:"initial"`
	Critical float64 `json:"critical" yaml:"critical"`
	Horizon  float64 `json:"horizon" yaml:"horizon"`
	K        float64 `json:"k" yaml:"k"`
}

func DefaultSpec() Spec {
	return Spec{Ambient: 35, Initial: 5, Critical: 25, Horizon: 24, K: 0.15}
}

func (s Spec) Validate() error {
	for _, v := range []float64{s.Ambient, s.Initial, s.Critical} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	if !(s.Horizon > 0) || math.IsInf(s.Horizon, 0) {
		return ErrNonPositiveHorizon
	}
	if !(s.K > 0) || math.IsInf(s.K, 0) {
		return ErrNonPositiveRate
	}
	return nil
}

const (
	StatusSafe     = "SAFE"
	StatusCritical = "CRITICAL"
)

type Result struct {
	Curve series.Series `json:"-"`
	Times []float64     `json:"times"`
	Temps []float64     `json:"temperatures"`

	// TimeToThreshold is the first sampled time with T ≥ critical.
	TimeToThreshold *float64 `json:"time_to_threshold,omitempty"`

	// ExactCrossing is the analytic crossing time when it lies in the horizon.
	ExactCrossing *float64 `json:"exact_crossing,omitempty"`

	Critical bool   `json:"critical"`
	Status   string `json:"status"`
}

// Temperature evaluates the closed form at time t.
func (s Spec) Temperature(t float64) float64 {
	return s.Ambient + (s.Initial-s.Ambient)*math.Exp(-s.K*t)
}

// CrossingTime inverts T(t) = critical. ok is false when the curve never
// reaches the critical temperature; the horizon is not considered.
func CrossingTime(ambient, initial, critical, k float64) (float64, bool) {
	if initial >= critical {
		return 0, true
	}
	// Rising toward ambient; the asymptote itself is never reached.
	if ambient <= critical || k <= 0 {
		return 0, false
	}
	ratio := (critical - ambient) / (initial - ambient)
	return -math.Log(ratio) / k, true
}

// Simulate samples the cooling curve and searches for the threshold.
func Simulate(spec Spec) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}

	offset := spec.Initial - spec.Ambient
	gap := spec.Critical - spec.Ambient
	if math.IsInf(offset, 0) || math.IsInf(gap, 0) {
		return Result{}, ErrOutOfRange
	}

	curve := series.Map(series.Linspace(0, spec.Horizon, series.DefaultSamples), spec.Temperature)
	if !curve.IsValid() {
		return Result{}, ErrOutOfRange
	}
	res := Result{
		Curve:  curve,
		Times:  curve.X,
		Temps:  curve.Y,
		Status: StatusSafe,
	}

	// Compared as offsets from ambient so that a curve approaching
	// critical == ambient never rounds onto the threshold.
	for _, t := range curve.X {
		if offset*math.Exp(-spec.K*t) >= gap {
			res.TimeToThreshold = &t
			break
		}
	}

	if t, ok := CrossingTime(spec.Ambient, spec.Initial, spec.Critical, spec.K); ok && t <= spec.Horizon {
		res.ExactCrossing = &t
	}

	if res.TimeToThreshold != nil || res.ExactCrossing != nil {
		res.Critical = true
		res.Status = StatusCritical
	}
	return res, nil
}
