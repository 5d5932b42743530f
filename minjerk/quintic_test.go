package minjerk

import (
	"testing"

	"go.viam.com/test"
)

func TestQuinticBoundaryConditions(t *testing.T) {
	for _, tc := range []struct {
		name                             string
		q0, v0, a0, q1, v1, a1, duration float64
	}{
		{"rest to rest", 0, 0, 0, 1, 0, 0, 1},
		{"negative sweep", 2.5, 0, 0, -1.25, 0, 0, 0.8},
		{"moving boundaries", -0.5, 1.2, -0.3, 2.5, -0.7, 0.9, 2.3},
		{"long duration", 0.1, 0.01, 0, 3.0, 0, -0.02, 12},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := QuinticCoefficients(tc.q0, tc.v0, tc.a0, tc.q1, tc.v1, tc.a1, tc.duration)
			test.That(t, err, test.ShouldBeNil)

			test.That(t, c.Position(0), test.ShouldAlmostEqual, tc.q0, 1e-9)
			test.That(t, c.Velocity(0), test.ShouldAlmostEqual, tc.v0, 1e-9)
			test.That(t, c.Acceleration(0), test.ShouldAlmostEqual, tc.a0, 1e-9)
			test.That(t, c.Position(tc.duration), test.ShouldAlmostEqual, tc.q1, 1e-9)
			test.That(t, c.Velocity(tc.duration), test.ShouldAlmostEqual, tc.v1, 1e-9)
			test.That(t, c.Acceleration(tc.duration), test.ShouldAlmostEqual, tc.a1, 1e-9)
		})
	}
}

func TestQuinticRestToRestMidpoint(t *testing.T) {
	// with zero boundary velocity and acceleration the profile is symmetric
	c, err := QuinticCoefficients(1, 0, 0, 3, 0, 0, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Position(1), test.ShouldAlmostEqual, 2, 1e-9)
	test.That(t, c.Acceleration(1), test.ShouldAlmostEqual, 0, 1e-9)
}

func TestQuinticDerivativeChain(t *testing.T) {
	c, err := QuinticCoefficients(-0.5, 1.2, -0.3, 2.5, -0.7, 0.9, 2.3)
	test.That(t, err, test.ShouldBeNil)

	// central differences are exact to rounding for one-degree-lower polynomials
	const h = 1e-4
	for _, at := range []float64{0.2, 1.0, 2.1} {
		test.That(t, (c.Position(at+h)-c.Position(at-h))/(2*h),
			test.ShouldAlmostEqual, c.Velocity(at), 1e-5)
		test.That(t, (c.Velocity(at+h)-c.Velocity(at-h))/(2*h),
			test.ShouldAlmostEqual, c.Acceleration(at), 1e-5)
		test.That(t, (c.Acceleration(at+h)-c.Acceleration(at-h))/(2*h),
			test.ShouldAlmostEqual, c.Jerk(at), 1e-5)
		test.That(t, (c.Jerk(at+h)-c.Jerk(at-h))/(2*h),
			test.ShouldAlmostEqual, c.Snap(at), 1e-5)
		test.That(t, (c.Snap(at+h)-c.Snap(at-h))/(2*h),
			test.ShouldAlmostEqual, c.Crackle(), 1e-5)
	}
}

func TestQuinticInvalidDuration(t *testing.T) {
	for _, duration := range []float64{0, -1, 1e-10} {
		_, err := QuinticCoefficients(0, 0, 0, 1, 0, 0, duration)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err, test.ShouldWrap, ErrInvalidDuration)
	}
}
