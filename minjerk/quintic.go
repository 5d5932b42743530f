// Package minjerk plans minimum-jerk joint trajectories.
//
// Each joint follows a degree-5 polynomial, the closed-form minimizer of the
// integrated squared jerk under fixed boundary position, velocity, and
// acceleration. The planner also reports the Pontryagin costates and the
// running cost functional so the optimality of the profile can be checked
// point by point.
package minjerk

// durations at or below this are rejected; the power terms of the
// boundary-value system blow up numerically.
const minDuration = 1e-9

// Coefficients describe one joint's position profile
// q(t) = c0 + c1*t + c2*t^2 + c3*t^3 + c4*t^4 + c5*t^5.
type Coefficients [6]float64

// QuinticCoefficients solves the two-point boundary-value problem for a single
// joint: it returns the unique quintic satisfying q(0)=q0, q'(0)=v0, q''(0)=a0
// and q(T)=q1, q'(T)=v1, q''(T)=a1 over the given duration T.
func QuinticCoefficients(q0, v0, a0, q1, v1, a1, duration float64) (Coefficients, error) {
	if duration <= minDuration {
		return Coefficients{}, newInvalidDurationError(duration)
	}

	t := duration
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t

	// Rows are the polynomial and its first two derivatives at t=0 and t=T.
	a := [6][6]float64{
		{1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{0, 0, 2, 0, 0, 0},
		{1, t, t2, t3, t4, t5},
		{0, 1, 2 * t, 3 * t2, 4 * t3, 5 * t4},
		{0, 0, 2, 6 * t, 12 * t2, 20 * t3},
	}
	b := [6]float64{q0, v0, a0, q1, v1, a1}

	x, err := solve6(a, b)
	if err != nil {
		return Coefficients{}, err
	}
	return Coefficients(x), nil
}

// Position evaluates q(t).
func (c Coefficients) Position(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	return c[0] + c[1]*t + c[2]*t2 + c[3]*t3 + c[4]*t4 + c[5]*t5
}

// Velocity evaluates q'(t).
func (c Coefficients) Velocity(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	return c[1] + 2*c[2]*t + 3*c[3]*t2 + 4*c[4]*t3 + 5*c[5]*t4
}

// Acceleration evaluates q''(t).
func (c Coefficients) Acceleration(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 2*c[2] + 6*c[3]*t + 12*c[4]*t2 + 20*c[5]*t3
}

// Jerk evaluates q'''(t), the control variable of the minimum-jerk problem.
func (c Coefficients) Jerk(t float64) float64 {
	return 6*c[3] + 24*c[4]*t + 60*c[5]*t*t
}

// Snap evaluates the fourth derivative of q.
func (c Coefficients) Snap(t float64) float64 {
	return 24*c[4] + 120*c[5]*t
}

// Crackle evaluates the fifth derivative of q, constant for a quintic.
func (c Coefficients) Crackle() float64 {
	return 120 * c[5]
}
