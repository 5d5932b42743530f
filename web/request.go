package web

import "github.com/pkg/errors"

// Defaults applied when the request omits T or dt.
const (
	defaultDuration = 1.0
	defaultStep     = 0.02
)

// wireDoF is the joint count of the wire format. Requests carry at least this
// many target values and responses always carry exactly this many positions.
const wireDoF = 6

// planRequest is the JSON body of POST /arm/plan_pmp_q.
type planRequest struct {
	QTarget  []float64 `json:"q_target"`
	Duration *float64  `json:"T"`
	Step     *float64  `json:"dt"`
	Full     bool      `json:"full"`
}

// validate applies defaults and rejects malformed fields before anything
// reaches the planner. Only the first wireDoF target values are used.
func (r *planRequest) validate() (target []float64, duration, step float64, err error) {
	if r.QTarget == nil {
		return nil, 0, 0, errors.New("missing required field q_target (array)")
	}
	if len(r.QTarget) < wireDoF {
		return nil, 0, 0, errors.Errorf("q_target must have at least %d values, got %d", wireDoF, len(r.QTarget))
	}
	duration = defaultDuration
	if r.Duration != nil {
		if *r.Duration <= 0 {
			return nil, 0, 0, errors.Errorf("T must be positive, got %v", *r.Duration)
		}
		duration = *r.Duration
	}
	step = defaultStep
	if r.Step != nil {
		if *r.Step <= 0 {
			return nil, 0, 0, errors.Errorf("dt must be positive, got %v", *r.Step)
		}
		step = *r.Step
	}
	return r.QTarget[:wireDoF], duration, step, nil
}
