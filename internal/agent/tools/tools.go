package tools

import (
	"fmt"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

// Deps are the collaborators shared by the built-in tools.
type Deps struct {
	Sequences sequence.UseCase
	Sessions  session.UseCase
	Logger    log.Logger
}

// Register adds every built-in tool to r. Any failure is a startup error.
func Register(r *agent.Registry, d Deps) error {
	defs := []agent.Definition{
		NewGenerateSequenceTool(d.Sequences, d.Sessions, d.Logger).Definition(),
		NewRefineStepTool(d.Sequences, d.Sessions, d.Logger).Definition(),
		NewAnalyzeSequenceTool(d.Sequences, d.Sessions, d.Logger).Definition(),
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func unexpectedArgs(want string, got agent.Arguments) error {
	return fmt.Errorf("%w: %s received %T", agent.ErrInvalidArguments, want, got)
}
