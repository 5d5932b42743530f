// Package session ties one arm's tracked pose to successive planning calls.
//
// Each robot instance owns exactly one Session. The session serializes
// concurrent plan requests so a plan always starts from the pose the previous
// successful plan committed.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"

	"go.viam.com/armplan/armstate"
	"go.viam.com/armplan/minjerk"
)

// Session owns the joint state consumed across planning invocations.
type Session struct {
	mu         sync.Mutex
	model      *armstate.Model
	clk        clock.Clock
	lastCommit time.Time
	logger     golog.Logger
}

// New returns a session tracking the given number of joints, starting at the
// zero pose.
func New(dof int, logger golog.Logger) *Session {
	return NewWithClock(dof, clock.New(), logger)
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(dof int, clk clock.Clock, logger golog.Logger) *Session {
	return &Session{
		model:  armstate.New(dof),
		clk:    clk,
		logger: logger,
	}
}

// DoF returns the number of joints the session tracks.
func (s *Session) DoF() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.DoF()
}

// CurrentPositions returns a copy of the tracked joint positions.
func (s *Session) CurrentPositions() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Positions()
}

// LastCommit returns when a plan last moved the tracked pose; zero if none
// has.
func (s *Session) LastCommit() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCommit
}

// PlanMove plans a minimum-jerk trajectory from the tracked pose to target
// and, on success, snaps the tracked pose to the target with zero velocity so
// the next plan starts there. The returned trajectory is planned to the raw
// target; only the stored pose is clamped into the joint limits. On failure
// the stored pose is untouched.
func (s *Session) PlanMove(ctx context.Context, target []float64, duration, step float64) (minjerk.Trajectory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.model.Positions()
	traj, err := minjerk.Plan(ctx, start, target, duration, step)
	if err != nil {
		return nil, err
	}
	if err := s.model.SetState(target, make([]float64, len(target))); err != nil {
		return nil, err
	}
	s.lastCommit = s.clk.Now()
	s.logger.Debugw("planned move",
		"dof", len(target),
		"duration", duration,
		"step", step,
		"points", len(traj),
	)
	return traj, nil
}

// SetTorque stores the torque vector consumed by Step.
func (s *Session) SetTorque(tau []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.SetTorque(tau)
}

// Step advances the tracked state by one Euler step using the stored torque,
// for callers simulating the arm between planning calls.
func (s *Session) Step(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.Step(dt)
}
