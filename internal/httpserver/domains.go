package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/agent/orchestrator"
	"outreach-agent/internal/agent/tools"
	chatHTTP "outreach-agent/internal/chat/delivery/http"
	chatRepo "outreach-agent/internal/chat/repository/sqlite"
	chatUC "outreach-agent/internal/chat/usecase"
	"outreach-agent/internal/middleware"
	notifyHTTP "outreach-agent/internal/notify/delivery/http"
	seqHTTP "outreach-agent/internal/sequence/delivery/http"
	seqRepo "outreach-agent/internal/sequence/repository/sqlite"
	seqUC "outreach-agent/internal/sequence/usecase"
	sessionHTTP "outreach-agent/internal/session/delivery/http"
	sessionRepo "outreach-agent/internal/session/repository/sqlite"
	sessionUC "outreach-agent/internal/session/usecase"
	userRepo "outreach-agent/internal/user/repository/sqlite"
	userUC "outreach-agent/internal/user/usecase"
)

// setupDomains builds every domain bottom-up and registers its routes.
//
// Order matters:
//  1. users, then sequences (they create users on demand)
//  2. sessions (read sequences for the snapshot)
//  3. tool registry and dispatcher (use sequences and sessions)
//  4. orchestrator, then chat
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Users and sequences
	users := userUC.New(userRepo.New(srv.db, srv.l), srv.l)
	sequences := seqUC.New(seqRepo.New(srv.db, srv.l), users, srv.llm, srv.broadcaster, srv.l, srv.agent.DefaultUserID)

	// 2. Sessions
	sessions, err := sessionUC.New(sessionRepo.New(srv.db, srv.l), sequences, srv.l, srv.session.CacheSize)
	if err != nil {
		return fmt.Errorf("session usecase: %w", err)
	}

	// 3. Tools
	registry := agent.NewRegistry()
	if err := tools.Register(registry, tools.Deps{Sequences: sequences, Sessions: sessions, Logger: srv.l}); err != nil {
		return fmt.Errorf("register tools: %w", err)
	}
	dispatcher := agent.NewDispatcher(registry, srv.broadcaster, srv.l)

	// 4. Orchestrator and chat
	orc := orchestrator.New(srv.llm, registry, dispatcher, sequences, srv.broadcaster, srv.l, orchestrator.Config{
		MaxTokens:   srv.agent.MaxTokens,
		Temperature: srv.agent.Temperature,
	})
	chat := chatUC.New(chatRepo.New(srv.db, srv.l), users, sessions, orc, srv.broadcaster, srv.l, srv.agent.HistoryLimit)

	// Routes
	seqHTTP.RegisterRoutes(api, seqHTTP.New(srv.l, sequences))
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chat, srv.agent.DefaultUserID), mw.RateLimit())
	sessionHTTP.RegisterRoutes(api, sessionHTTP.New(srv.l, sessions))
	notifyHTTP.RegisterRoutes(api, notifyHTTP.New(srv.l, srv.broadcaster))

	srv.l.Infof(ctx, "Registered %d agent tools", len(registry.List()))
	return nil
}
