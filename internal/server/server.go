package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/danielgtaylor/huma/v2/adapters/humafiber"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	chiadapter "github.com/barisgit/snippets/adapters/chi"
	echoadapter "github.com/barisgit/snippets/adapters/echo"
	fiberadapter "github.com/barisgit/snippets/adapters/fiber"
	ginadapter "github.com/barisgit/snippets/adapters/gin"
	"github.com/barisgit/snippets/adapters/nethttp"
	"github.com/barisgit/snippets/config"
	"github.com/barisgit/snippets/internal/api"
	"github.com/barisgit/snippets/internal/logging"
	"github.com/barisgit/snippets/openapi"
	"github.com/barisgit/snippets/pkg/serve"
	"github.com/barisgit/snippets/snippets"
)

const shutdownTimeout = 5 * time.Second

// Server serves the API, the raw snippets and the docs pages on the
// configured router.
type Server struct {
	cfg     config.ServerConfig
	api     huma.API
	handler http.Handler
	logger  zerolog.Logger
}

// routes holds everything a router needs to mount
type routes struct {
	reg     *snippets.Registry
	cfg     config.ServerConfig
	version string
	docs    http.Handler
}

// New builds the HTTP handler for cfg.Router
func New(cfg config.ServerConfig, reg *snippets.Registry, version string) (*Server, error) {
	if errs := config.ValidatePrefixes(cfg); errs.HasErrors() {
		return nil, fmt.Errorf("invalid route prefixes: %w", errs)
	}

	docs, err := NewDocsHandler(reg, cfg.DocsPrefix)
	if err != nil {
		return nil, err
	}

	rt := routes{reg: reg, cfg: cfg, version: version, docs: docs}

	var (
		humaAPI huma.API
		handler http.Handler
	)
	switch cfg.Router {
	case "", "nethttp":
		humaAPI, handler = rt.netHTTPHandler()
	case "chi":
		humaAPI, handler = rt.chiHandler()
	case "gin":
		humaAPI, handler = rt.ginHandler()
	case "echo":
		humaAPI, handler = rt.echoHandler()
	case "fiber":
		humaAPI, handler = rt.fiberHandler()
	default:
		return nil, fmt.Errorf("unsupported router: %s", cfg.Router)
	}

	logger := logging.GetLogger("server")
	return &Server{
		cfg:     cfg,
		api:     humaAPI,
		handler: logging.RequestLogger(logger)(handler),
		logger:  logger,
	}, nil
}

// API returns the Huma API the operations are registered on
func (s *Server) API() huma.API {
	return s.api
}

// Handler returns the root HTTP handler, request logging included
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", httpServer.Addr).
			Str("router", s.cfg.Router).
			Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func (rt routes) humaConfig() huma.Config {
	return openapi.Config(rt.cfg.APIPrefix, rt.version)
}

func (rt routes) snippetConfig() serve.SnippetConfig {
	return serve.SnippetConfig{Prefix: strings.TrimSuffix(rt.cfg.SnippetPrefix, "/")}
}

func (rt routes) docsPrefix() string {
	return strings.TrimSuffix(rt.cfg.DocsPrefix, "/")
}

func (rt routes) netHTTPHandler() (huma.API, http.Handler) {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, rt.humaConfig())
	api.Register(humaAPI, rt.reg, rt.cfg.APIPrefix, rt.version)

	snippetConfig := rt.snippetConfig()
	mux.Handle(snippetConfig.Prefix+"/", nethttp.SnippetHandler(rt.reg, snippetConfig))

	docs := rt.docsPrefix()
	mux.Handle(docs, rt.docs)
	mux.Handle(docs+"/", rt.docs)
	return humaAPI, mux
}

func (rt routes) chiHandler() (huma.API, http.Handler) {
	r := chi.NewRouter()
	humaAPI := humachi.New(r, rt.humaConfig())
	api.Register(humaAPI, rt.reg, rt.cfg.APIPrefix, rt.version)

	chiadapter.Mount(r, rt.reg, rt.snippetConfig())

	docs := rt.docsPrefix()
	r.Get(docs, rt.docs.ServeHTTP)
	r.Get(docs+"/", rt.docs.ServeHTTP)
	r.Get(docs+"/{id}", rt.docs.ServeHTTP)
	return humaAPI, r
}

func (rt routes) ginHandler() (huma.API, http.Handler) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	humaAPI := humagin.New(r, rt.humaConfig())
	api.Register(humaAPI, rt.reg, rt.cfg.APIPrefix, rt.version)

	ginadapter.Register(r, rt.reg, rt.snippetConfig())

	docs := rt.docsPrefix()
	r.GET(docs, gin.WrapH(rt.docs))
	r.GET(docs+"/:id", gin.WrapH(rt.docs))
	return humaAPI, r
}

func (rt routes) echoHandler() (huma.API, http.Handler) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	humaAPI := humaecho.New(e, rt.humaConfig())
	api.Register(humaAPI, rt.reg, rt.cfg.APIPrefix, rt.version)

	echoadapter.Register(e, rt.reg, rt.snippetConfig())

	docs := rt.docsPrefix()
	e.GET(docs, echo.WrapHandler(rt.docs))
	e.GET(docs+"/", echo.WrapHandler(rt.docs))
	e.GET(docs+"/:id", echo.WrapHandler(rt.docs))
	return humaAPI, e
}

func (rt routes) fiberHandler() (huma.API, http.Handler) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	humaAPI := humafiber.New(app, rt.humaConfig())
	api.Register(humaAPI, rt.reg, rt.cfg.APIPrefix, rt.version)

	fiberadapter.Register(app, rt.reg, rt.snippetConfig())

	docs := rt.docsPrefix()
	app.Get(docs, adaptor.HTTPHandler(rt.docs))
	app.Get(docs+"/:id", adaptor.HTTPHandler(rt.docs))
	return humaAPI, adaptor.FiberApp(app)
}
