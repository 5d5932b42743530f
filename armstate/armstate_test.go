package armstate

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNewStartsAtZero(t *testing.T) {
	m := New(6)
	test.That(t, m.DoF(), test.ShouldEqual, 6)
	test.That(t, m.Positions(), test.ShouldResemble, make([]float64, 6))
	test.That(t, m.Velocities(), test.ShouldResemble, make([]float64, 6))
}

func TestNewWithLimitsValidation(t *testing.T) {
	_, err := NewWithLimits(3, []float64{-1, -1}, []float64{1, 1, 1}, []float64{2, 2, 2})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err, test.ShouldWrap, ErrSizeMismatch)

	m, err := NewWithLimits(2, []float64{-1, -2}, []float64{1, 2}, []float64{0.5, 0.5})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.DoF(), test.ShouldEqual, 2)
}

func TestSetStateClamps(t *testing.T) {
	m := New(3)
	err := m.SetState([]float64{10, -10, 1}, []float64{9, -9, 0.5})
	test.That(t, err, test.ShouldBeNil)

	q := m.Positions()
	test.That(t, q[0], test.ShouldAlmostEqual, math.Pi)
	test.That(t, q[1], test.ShouldAlmostEqual, -math.Pi)
	test.That(t, q[2], test.ShouldAlmostEqual, 1)

	dq := m.Velocities()
	test.That(t, dq[0], test.ShouldAlmostEqual, 4)
	test.That(t, dq[1], test.ShouldAlmostEqual, -4)
	test.That(t, dq[2], test.ShouldAlmostEqual, 0.5)
}

func TestSetStateSizeMismatch(t *testing.T) {
	m := New(3)
	err := m.SetState([]float64{1, 2}, []float64{0, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err, test.ShouldWrap, ErrSizeMismatch)

	err = m.SetState([]float64{1, 2, 3}, []float64{0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err, test.ShouldWrap, ErrSizeMismatch)

	// failed set must not partially mutate
	test.That(t, m.Positions(), test.ShouldResemble, make([]float64, 3))
}

func TestSetTorqueSizeMismatch(t *testing.T) {
	m := New(2)
	err := m.SetTorque([]float64{1})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err, test.ShouldWrap, ErrSizeMismatch)
}

func TestStepIntegrates(t *testing.T) {
	m := New(1)
	test.That(t, m.SetTorque([]float64{1}), test.ShouldBeNil)

	m.Step(0.1)
	test.That(t, m.Velocities()[0], test.ShouldAlmostEqual, 0.1)
	test.That(t, m.Positions()[0], test.ShouldAlmostEqual, 0.01)

	m.Step(0.1)
	test.That(t, m.Velocities()[0], test.ShouldAlmostEqual, 0.2)
	test.That(t, m.Positions()[0], test.ShouldAlmostEqual, 0.03)
}

func TestStepClamps(t *testing.T) {
	m := New(1)
	test.That(t, m.SetTorque([]float64{1000}), test.ShouldBeNil)

	m.Step(1.0)
	test.That(t, m.Velocities()[0], test.ShouldAlmostEqual, 4)

	for i := 0; i < 10; i++ {
		m.Step(1.0)
	}
	test.That(t, m.Positions()[0], test.ShouldAlmostEqual, math.Pi)
}

func TestPositionsReturnsCopy(t *testing.T) {
	m := New(2)
	q := m.Positions()
	q[0] = 42
	test.That(t, m.Positions()[0], test.ShouldEqual, 0)
}
