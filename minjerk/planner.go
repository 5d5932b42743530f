package minjerk

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// sample steps at or below this are treated as degenerate when choosing the
// sample count.
const minStep = 1e-9

// Point is one trajectory sample. All per-joint slices have the same length,
// the DOF count of the planning call that produced the point.
type Point struct {
	// T is the sample time in seconds from the start of the trajectory.
	T float64
	// Q, DQ, DDQ hold position (rad), velocity, and acceleration per joint.
	Q, DQ, DDQ []float64
	// U is the jerk per joint, the control input of the triple integrator.
	U []float64
	// Lambda1, Lambda2, Lambda3 are the Pontryagin costates associated with
	// position, velocity, and acceleration. Lambda3 satisfies u = -lambda3.
	Lambda1, Lambda2, Lambda3 []float64
	// Cost is the running cost functional, integral of 0.5*||u||^2 up to
	// and including this sample.
	Cost float64
}

// Trajectory is a finite sequence of samples in strictly increasing time
// order, from t=0 to the full planning duration.
type Trajectory []Point

// Plan computes the minimum-jerk trajectory from start to goal over the given
// duration, sampled every step seconds. Boundary velocities and accelerations
// are zero, so each joint comes to a full stop at the goal.
//
// The returned trajectory has max(2, round(duration/step))+1 points; the last
// sample is clamped to land exactly on the duration. Any failure aborts the
// whole call, a partial trajectory is never returned.
func Plan(ctx context.Context, start, goal []float64, duration, step float64) (Trajectory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(start) != len(goal) {
		return nil, newSizeMismatchError(len(start), len(goal))
	}
	dof := len(start)

	// Each joint's boundary-value system is independent of the others.
	coeffs := make([]Coefficients, dof)
	var group errgroup.Group
	for i := 0; i < dof; i++ {
		i := i
		group.Go(func() error {
			c, err := QuinticCoefficients(start[i], 0, 0, goal[i], 0, 0, duration)
			if err != nil {
				return err
			}
			coeffs[i] = c
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	n := int(math.Round(duration / math.Max(step, minStep)))
	if n < 2 {
		n = 2
	}

	traj := make(Trajectory, 0, n+1)
	var cost float64
	for k := 0; k <= n; k++ {
		// The final sample always lands exactly on the duration, whichever
		// way the sample count rounded.
		t := float64(k) * step
		if t > duration || k == n {
			t = duration
		}

		p := Point{
			T:       t,
			Q:       make([]float64, dof),
			DQ:      make([]float64, dof),
			DDQ:     make([]float64, dof),
			U:       make([]float64, dof),
			Lambda1: make([]float64, dof),
			Lambda2: make([]float64, dof),
			Lambda3: make([]float64, dof),
		}
		for i, c := range coeffs {
			p.Q[i] = c.Position(t)
			p.DQ[i] = c.Velocity(t)
			p.DDQ[i] = c.Acceleration(t)
			u := c.Jerk(t)
			p.U[i] = u
			// From the adjoint equations of the triple integrator:
			// lambda3 = -u, lambda2 = du/dt, lambda1 = -d2u/dt2.
			p.Lambda3[i] = -u
			p.Lambda2[i] = c.Snap(t)
			p.Lambda1[i] = -c.Crackle()
		}
		if k > 0 {
			cost += 0.5 * floats.Dot(p.U, p.U) * step
		}
		p.Cost = cost

		traj = append(traj, p)
	}
	return traj, nil
}
