// Package http exposes registered machines over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the machines of a registry. Every request builds its own
// machine, so requests never share a cursor.
type Server struct {
	Machines *registry.Registry[automata.Factory]
	Hooks    domain.LifecycleHooks
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

// Option configures a Server.
type Option func(*Server)

// WithHooks attaches lifecycle hooks to every machine the server builds.
func WithHooks(h domain.LifecycleHooks) Option {
	return func(s *Server) { s.Hooks = h }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// WithMetrics mounts GET /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.Gatherer = g }
}

// NewHandler creates a new HTTP handler for the registry.
func NewHandler(machines *registry.Registry[automata.Factory], opts ...Option) http.Handler {
	s := &Server{Machines: machines}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/machines", func(r chi.Router) {
		r.Get("/", s.ListMachines)
		r.Get("/{name}/graph", s.GetGraph)
		r.Post("/{name}/process", s.Process)
	})
	if s.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// MachineInfo describes a registered machine.
type MachineInfo struct {
	Name        string         `json:"name"`
	Variant     domain.Variant `json:"variant"`
	States      int            `json:"states"`
	Transitions int            `json:"transitions"`
	Default     bool           `json:"default,omitempty"`
}

// ProcessRequest is the body of POST /machines/{name}/process.
type ProcessRequest struct {
	Symbols  []string `json:"symbols"`
	SkipNone bool     `json:"skip_none,omitempty"`
}

// ProcessResponse reports the outcome of a run. Accepted is set for
// acceptors and Outputs for output-producing variants.
type ProcessResponse struct {
	FinalState string          `json:"final_state,omitempty"`
	Accepted   *bool           `json:"accepted,omitempty"`
	Outputs    []domain.Output `json:"outputs,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "automata-http",
		"version": strings.TrimSpace(automata.Version),
	})
}

// ListMachines handles the GET /machines request.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	defaultName, _, _ := s.Machines.Default()

	infos := []MachineInfo{}
	for _, name := range s.Machines.Names() {
		m, status, err := s.build(name)
		if err != nil {
			s.fail(w, status, err)
			return
		}
		infos = append(infos, MachineInfo{
			Name:        name,
			Variant:     m.Variant(),
			States:      len(m.States()),
			Transitions: len(m.AllTransitions()),
			Default:     name == defaultName,
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

// GetGraph handles the GET /machines/{name}/graph request. The format query
// parameter selects json (default), dot or mermaid. Repeated symbol
// parameters are run first and the path taken is highlighted.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	format := query.Get("format")
	switch format {
	case "", "json", "dot", "mermaid":
	default:
		s.fail(w, http.StatusBadRequest, fmt.Errorf("unknown graph format %q", format))
		return
	}

	trace := graph.NewTrace()
	m, status, err := s.build(chi.URLParam(r, "name"), trace.Hooks())
	if err != nil {
		s.fail(w, status, err)
		return
	}

	var overlay *graph.GraphOverlay
	if symbols := query["symbol"]; len(symbols) > 0 {
		if err := m.Process(domain.Symbols(symbols...)); err != nil {
			s.fail(w, runStatus(err), err)
			return
		}
		overlay = trace.Overlay()
	}
	g := m.Inspect()

	switch format {
	case "", "json":
		writeJSON(w, http.StatusOK, g)
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		fmt.Fprint(w, graph.GenerateDOT(g, graph.DOTOptions{Overlay: overlay}))
	case "mermaid":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, graph.GenerateMermaid(g, overlay))
	}
}

// Process handles the POST /machines/{name}/process request.
func (s *Server) Process(w http.ResponseWriter, r *http.Request) {
	var body ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("Process: Invalid request body", "err", err)
		s.fail(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	m, status, err := s.build(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, status, err)
		return
	}

	symbols := domain.Symbols(body.Symbols...)
	var resp ProcessResponse
	switch {
	case m.Variant().CanAccept():
		var ok bool
		ok, err = m.Accepts(symbols)
		if err == nil {
			resp.Accepted = &ok
		}
	case m.Variant().ProducesOutput():
		var opts []automata.OutputOption
		if body.SkipNone {
			opts = append(opts, automata.SkipNone())
		}
		resp.Outputs, err = m.Transduce(symbols, opts...)
	default:
		err = m.Process(symbols)
	}

	if cur := m.Current(); cur != nil {
		resp.FinalState = cur.Name()
	}

	if err != nil {
		s.Logger.Info("Process: run failed", "machine", m.Name(), "err", err)
		resp.Error = err.Error()
		writeJSON(w, runStatus(err), resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// build creates a fresh machine observed by the server hooks and any extra
// hooks of the request.
func (s *Server) build(name string, extra ...domain.LifecycleHooks) (*automata.Machine, int, error) {
	factory, err := s.Machines.Get(name)
	if err != nil {
		return nil, http.StatusNotFound, err
	}
	hooks := observability.Combine(append([]domain.LifecycleHooks{s.Hooks}, extra...)...)
	m, err := factory(automata.WithLifecycleHooks(hooks), automata.WithLogger(s.Logger))
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to build machine %q: %w", name, err)
	}
	return m, http.StatusOK, nil
}

// runStatus maps a failed run to a status: rejected input is the client's
// problem, anything else is ours.
func runStatus(err error) int {
	if domain.IsBehavioral(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
