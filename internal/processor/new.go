package processor

import (
	"github.com/yunpil/youtube/internal/config"
	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/logger"
	"github.com/yunpil/youtube/internal/orchestrator"
)

type implProcessor struct {
	paths        config.PathsConfig
	orchestrator orchestrator.Orchestrator
	credentials  credential.Holder
	logger       logger.Logger
}

// New creates a Processor writing into paths.Output and archiving sources
// into paths.Archived.
func New(paths config.PathsConfig, orch orchestrator.Orchestrator, creds credential.Holder, log logger.Logger) Processor {
	return &implProcessor{
		paths:        paths,
		orchestrator: orch,
		credentials:  creds,
		logger:       log,
	}
}
