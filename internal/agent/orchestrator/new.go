package orchestrator

import (
	"outreach-agent/internal/agent"
	"outreach-agent/internal/notify"
	"outreach-agent/pkg/llmprovider"
	pkgLog "outreach-agent/pkg/log"
)

// Orchestrator turns a conversation into one assistant reply, running any
// tools the model asks for along the way.
type Orchestrator struct {
	llm        llmprovider.Generator
	registry   *agent.Registry
	dispatcher *agent.Dispatcher
	steps      StepLister
	notifier   notify.Notifier
	l          pkgLog.Logger
	cfg        Config
}

func New(
	llm llmprovider.Generator,
	registry *agent.Registry,
	dispatcher *agent.Dispatcher,
	steps StepLister,
	notifier notify.Notifier,
	l pkgLog.Logger,
	cfg Config,
) *Orchestrator {
	if notifier == nil {
		notifier = notify.Nop()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &Orchestrator{
		llm:        llm,
		registry:   registry,
		dispatcher: dispatcher,
		steps:      steps,
		notifier:   notifier,
		l:          l,
		cfg:        cfg,
	}
}
