// Package server serves route resolution over HTTP.
//
//	GET /resolve?path=/movies/42/&query=lang%3Den
//	GET /routes
//	GET /healthz
//	GET /metrics
package server

import (
	"encoding/json"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/savsgio/gotils/strconv"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/navkit/router"
	"github.com/navkit/router/internal/config"
	"github.com/navkit/router/internal/metrics"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Server resolves navigation paths with a Router.
// The router must be initialised before serving and not re-initialised
// while serving.
type Server struct {
	router  *router.Router
	logger  *zap.Logger
	metrics *metrics.Metrics

	metricsHandler fasthttp.RequestHandler
	middleware     []Middleware
	handler        fasthttp.RequestHandler
	srv            *fasthttp.Server
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records lookups on m and serves g on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.metricsHandler = fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}
}

// WithMiddleware adds middleware, run after the recoverer and access log.
func WithMiddleware(middleware ...Middleware) Option {
	return func(s *Server) {
		s.middleware = append(s.middleware, middleware...)
	}
}

type resolveResponse struct {
	Pattern     string                  `json:"pattern"`
	View        string                  `json:"view,omitempty"`
	Meta        map[string]string       `json:"meta,omitempty"`
	Path        string                  `json:"path"`
	Params      map[string]string       `json:"params"`
	QueryString string                  `json:"queryString"`
	Query       map[string]router.Value `json:"query"`
}

type routesResponse struct {
	Routes []router.Descriptor `json:"routes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New returns a new Server.
func New(r *router.Router, logger *zap.Logger, cfg config.ServerConfig, opts ...Option) *Server {
	s := &Server{
		router: r,
		logger: logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	middleware := append([]Middleware{Recoverer(logger), AccessLog(logger)}, s.middleware...)
	s.handler = applyMiddleware(s.route, middleware)

	s.srv = &fasthttp.Server{
		Handler:      s.handler,
		Name:         cfg.Name,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       zap.NewStdLog(logger),
	}

	s.metrics.SetRoutes(r.Len())

	return s
}

// Handler handles a single request.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	s.handler(ctx)
}

// Serve serves requests from ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// ListenAndServe serves requests on the TCP address addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", zap.String("address", addr), zap.Int("routes", s.router.Len()))

	return s.srv.ListenAndServe(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	method := strconv.B2S(ctx.Method())
	if method != fasthttp.MethodGet && method != fasthttp.MethodHead {
		ctx.Response.Header.Set("Allow", "GET, HEAD")
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		ctx.SetBodyString(fasthttp.StatusMessage(fasthttp.StatusMethodNotAllowed))
		return
	}

	switch strconv.B2S(ctx.Path()) {
	case "/resolve":
		s.resolve(ctx)
	case "/routes":
		s.writeJSON(ctx, fasthttp.StatusOK, routesResponse{Routes: s.router.List()})
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/metrics":
		if s.metricsHandler == nil {
			ctx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
			return
		}
		s.metricsHandler(ctx)
	default:
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
	}
}

func (s *Server) resolve(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	if !args.Has("path") {
		s.writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{Error: "missing path"})
		return
	}

	path := string(args.Peek("path"))
	queryString := string(args.Peek("query"))

	start := time.Now()
	route, err := s.router.FindMatchingRoute(path, queryString)
	elapsed := time.Since(start)

	if err != nil {
		status, outcome := classify(err)
		s.metrics.ObserveLookup("", outcome, elapsed)
		s.logger.Debug("route lookup failed", zap.String("path", path), zap.Error(err))

		s.writeJSON(ctx, status, errorResponse{Error: err.Error()})
		return
	}

	s.metrics.ObserveLookup(route.View(), metrics.OutcomeMatched, elapsed)

	req := route.Request()
	s.writeJSON(ctx, fasthttp.StatusOK, resolveResponse{
		Pattern:     route.Pattern(),
		View:        route.View(),
		Meta:        route.Metadata(),
		Path:        req.Path(),
		Params:      req.Params(),
		QueryString: req.QueryString(),
		Query:       req.Query(),
	})
}

// classify maps router errors to a status code and a metrics outcome.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, router.ErrNotFound):
		return fasthttp.StatusNotFound, metrics.OutcomeNotFound
	case errors.Is(err, router.ErrInvalidPath):
		return fasthttp.StatusBadRequest, metrics.OutcomeInvalidPath
	case errors.Is(err, router.ErrNotInitialised):
		return fasthttp.StatusServiceUnavailable, metrics.OutcomeNotInitialised
	default:
		return fasthttp.StatusInternalServerError, metrics.OutcomeError
	}
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(buf.B)
}
