package web

import "go.viam.com/armplan/minjerk"

type planResponse struct {
	Step       float64     `json:"dt"`
	Unit       string      `json:"unit"`
	Trajectory []pointJSON `json:"trajectory"`
}

type pointJSON struct {
	T float64   `json:"t"`
	Q []float64 `json:"q"`

	// Populated only when the request asks for the full trajectory.
	DQ      []float64 `json:"dq,omitempty"`
	DDQ     []float64 `json:"ddq,omitempty"`
	U       []float64 `json:"u,omitempty"`
	Lambda1 []float64 `json:"lambda1,omitempty"`
	Lambda2 []float64 `json:"lambda2,omitempty"`
	Lambda3 []float64 `json:"lambda3,omitempty"`
	Cost    *float64  `json:"j_acc,omitempty"`
}

func newPlanResponse(traj minjerk.Trajectory, step float64, full bool) planResponse {
	points := make([]pointJSON, 0, len(traj))
	for _, p := range traj {
		pt := pointJSON{T: p.T, Q: padPositions(p.Q)}
		if full {
			cost := p.Cost
			pt.DQ = p.DQ
			pt.DDQ = p.DDQ
			pt.U = p.U
			pt.Lambda1 = p.Lambda1
			pt.Lambda2 = p.Lambda2
			pt.Lambda3 = p.Lambda3
			pt.Cost = &cost
		}
		points = append(points, pt)
	}
	return planResponse{Step: step, Unit: "rad", Trajectory: points}
}

// padPositions zero-pads (or truncates) a joint vector to exactly wireDoF
// values. Padding is a wire-format concern; the planner never sees it.
func padPositions(q []float64) []float64 {
	out := make([]float64, wireDoF)
	copy(out, q)
	return out
}
