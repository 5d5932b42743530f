// Package web exposes a planning session over HTTP/JSON.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"goji.io"
	"goji.io/pat"

	"go.viam.com/armplan/minjerk"
	"go.viam.com/armplan/session"
)

// Options configure Serve.
type Options struct {
	Port  int
	Pprof bool
}

// Server translates HTTP requests into planning calls on one session.
type Server struct {
	session *session.Session
	logger  golog.Logger
}

// NewServer returns a server backed by the given session.
func NewServer(sess *session.Session, logger golog.Logger) *Server {
	return &Server{session: sess, logger: logger}
}

// Handler returns the routing mux for the planning API.
func (s *Server) Handler() http.Handler {
	mux := goji.NewMux()
	s.installRoutes(mux)
	return mux
}

func (s *Server) installRoutes(mux *goji.Mux) {
	mux.HandleFunc(pat.Post("/arm/plan_pmp_q"), s.handlePlan)
	mux.HandleFunc(pat.Get("/health"), s.handleHealth)
}

// Serve listens on the configured port until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, options Options) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", options.Port))
	if err != nil {
		return err
	}

	mux := goji.NewMux()
	s.installRoutes(mux)
	if options.Pprof {
		mux.HandleFunc(pat.New("/debug/pprof/"), pprof.Index)
		mux.HandleFunc(pat.New("/debug/pprof/cmdline"), pprof.Cmdline)
		mux.HandleFunc(pat.New("/debug/pprof/profile"), pprof.Profile)
		mux.HandleFunc(pat.New("/debug/pprof/symbol"), pprof.Symbol)
		mux.HandleFunc(pat.New("/debug/pprof/trace"), pprof.Trace)
	}

	httpServer, err := utils.NewPossiblySecureHTTPServer(mux, utils.HTTPServerOptions{
		MaxHeaderBytes: 1 << 20,
		Addr:           listener.Addr().String(),
	})
	if err != nil {
		return multierr.Combine(err, listener.Close())
	}

	utils.PanicCapturingGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorw("error shutting down", "error", err)
		}
	})

	s.logger.Infow("serving", "url", fmt.Sprintf("http://%s", listener.Addr().String()))
	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.Wrap(err, "bad JSON body"))
		return
	}
	target, duration, step, err := req.validate()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	traj, err := s.session.PlanMove(r.Context(), target, duration, step)
	if err != nil {
		s.writeError(w, statusForPlanError(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, newPlanResponse(traj, step, req.Full))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusForPlanError maps planner error kinds onto HTTP status codes. A
// singular system means the solver contradicted its own construction, so it
// reports as a server error.
func statusForPlanError(err error) int {
	switch {
	case errors.Is(err, minjerk.ErrSizeMismatch), errors.Is(err, minjerk.ErrInvalidDuration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.logger.Debugw("request failed", "status", code, "error", err)
	s.writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorw("error writing response", "error", err)
	}
}
