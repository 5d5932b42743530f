// Package armstate tracks the commanded joint state of one arm between
// planning calls: positions, velocities, and the static limits they are
// clamped into after every mutation.
package armstate

import "math"

// Default per-joint limits, matching a +/-180 degree revolute joint.
const (
	defaultPositionLimit = math.Pi
	defaultVelocityLimit = 4.0
)

// Model holds clamped joint positions and velocities for one arm along with
// static per-joint limits and a torque vector for Euler integration. It is
// not safe for concurrent use; callers serialize access (see the session
// package).
type Model struct {
	q, dq, tau        []float64
	qmin, qmax, dqmax []float64
}

// New returns a model with the given number of joints, all positions and
// velocities zero, and default limits.
func New(dof int) *Model {
	qmin := make([]float64, dof)
	qmax := make([]float64, dof)
	dqmax := make([]float64, dof)
	for i := 0; i < dof; i++ {
		qmin[i] = -defaultPositionLimit
		qmax[i] = defaultPositionLimit
		dqmax[i] = defaultVelocityLimit
	}
	m, err := NewWithLimits(dof, qmin, qmax, dqmax)
	if err != nil {
		panic(err) // limits constructed above always match dof
	}
	return m
}

// NewWithLimits returns a model with the given per-joint position bounds and
// velocity magnitudes. All three limit vectors must have exactly dof values.
func NewWithLimits(dof int, qmin, qmax, dqmax []float64) (*Model, error) {
	for _, limits := range [][]float64{qmin, qmax, dqmax} {
		if len(limits) != dof {
			return nil, NewSizeMismatchError(dof, len(limits))
		}
	}
	m := &Model{
		q:     make([]float64, dof),
		dq:    make([]float64, dof),
		tau:   make([]float64, dof),
		qmin:  make([]float64, dof),
		qmax:  make([]float64, dof),
		dqmax: make([]float64, dof),
	}
	copy(m.qmin, qmin)
	copy(m.qmax, qmax)
	copy(m.dqmax, dqmax)
	return m, nil
}

// DoF returns the number of joints.
func (m *Model) DoF() int {
	return len(m.q)
}

// Positions returns a copy of the current joint positions.
func (m *Model) Positions() []float64 {
	out := make([]float64, len(m.q))
	copy(out, m.q)
	return out
}

// Velocities returns a copy of the current joint velocities.
func (m *Model) Velocities() []float64 {
	out := make([]float64, len(m.dq))
	copy(out, m.dq)
	return out
}

// SetState replaces the tracked positions and velocities and clamps every
// value into its configured limits.
func (m *Model) SetState(q, dq []float64) error {
	if len(q) != m.DoF() {
		return NewSizeMismatchError(m.DoF(), len(q))
	}
	if len(dq) != m.DoF() {
		return NewSizeMismatchError(m.DoF(), len(dq))
	}
	copy(m.q, q)
	copy(m.dq, dq)
	m.clampState()
	return nil
}

// SetTorque replaces the stored torque vector consumed by Step.
func (m *Model) SetTorque(tau []float64) error {
	if len(tau) != m.DoF() {
		return NewSizeMismatchError(m.DoF(), len(tau))
	}
	copy(m.tau, tau)
	return nil
}

// Step advances the state by one explicit Euler step of the double
// integrator ddq = tau, clamping velocity and position along the way.
func (m *Model) Step(dt float64) {
	for i := range m.q {
		m.dq[i] += dt * m.tau[i]
		m.dq[i] = clamp(m.dq[i], -m.dqmax[i], m.dqmax[i])
		m.q[i] += dt * m.dq[i]
		m.q[i] = clamp(m.q[i], m.qmin[i], m.qmax[i])
	}
}

func (m *Model) clampState() {
	for i := range m.q {
		m.q[i] = clamp(m.q[i], m.qmin[i], m.qmax[i])
		m.dq[i] = clamp(m.dq[i], -m.dqmax[i], m.dqmax[i])
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
