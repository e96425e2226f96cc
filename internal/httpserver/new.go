package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach-agent/config"
	"outreach-agent/internal/notify"
	"outreach-agent/pkg/llmprovider"
	"outreach-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure shared by the domains
	db          *sql.DB
	llm         llmprovider.Generator
	broadcaster *notify.Broadcaster

	// Tuning
	agent     config.AgentConfig
	session   config.SessionConfig
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB          *sql.DB
	LLM         llmprovider.Generator
	Broadcaster *notify.Broadcaster

	Agent     config.AgentConfig
	Session   config.SessionConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		llm:         cfg.LLM,
		broadcaster: cfg.Broadcaster,
		agent:       cfg.Agent,
		session:     cfg.Session,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("llm generator is required")
	}
	if srv.broadcaster == nil {
		return errors.New("broadcaster is required")
	}
	return nil
}

// Handler exposes the routed engine, mostly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
