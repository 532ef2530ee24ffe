package pipeline

import (
	"context"
	"time"

	"fileshare/internal/core"
	"fileshare/internal/logger"

	"github.com/google/uuid"
)

// State is a step of the share workflow. Failed is absorbing and no state
// leads back to an earlier one.
type State int

const (
	StateValidatingInput State = iota
	StateUploading
	StateShortening
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidatingInput:
		return "validating_input"
	case StateUploading:
		return "uploading"
	case StateShortening:
		return "shortening"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pipeline runs resolve → upload → shorten strictly in sequence.
// A Pipeline is meant for a single Run.
type Pipeline struct {
	resolver  FileResolver
	uploader  Uploader
	shortener Shortener

	state State
	run   core.Run
}

// NewPipeline creates a pipeline from its three stages
func NewPipeline(resolver FileResolver, uploader Uploader, shortener Shortener) *Pipeline {
	return &Pipeline{
		resolver:  resolver,
		uploader:  uploader,
		shortener: shortener,
		state:     StateValidatingInput,
	}
}

// State returns the last state reached.
func (p *Pipeline) State() State {
	return p.state
}

// RunInfo returns the identifier of the current or last run.
func (p *Pipeline) RunInfo() core.Run {
	return p.run
}

// Run uploads the file at path and returns its shortened download link.
// The first failing stage aborts the run; its error is returned unchanged.
func (p *Pipeline) Run(ctx context.Context, path string) (core.ShortenResult, error) {
	p.run = core.Run{ID: uuid.NewString(), Started: time.Now().UTC()}
	p.enter(StateValidatingInput)

	fh, err := p.resolver.Resolve(path)
	if err != nil {
		return core.ShortenResult{}, p.fail(err)
	}
	logger.Debug("Input resolved", "run_id", p.run.ID, "file", fh.BaseName, "bytes", fh.Size())

	p.enter(StateUploading)
	uploaded, err := p.uploader.Upload(ctx, fh)
	if err != nil {
		return core.ShortenResult{}, p.fail(err)
	}
	logger.Debug("Upload completed", "run_id", p.run.ID, "download_url", uploaded.DownloadURL)

	p.enter(StateShortening)
	short, err := p.shortener.Shorten(ctx, uploaded.DownloadURL)
	if err != nil {
		return core.ShortenResult{}, p.fail(err)
	}

	p.enter(StateDone)
	logger.Info("Share completed",
		"run_id", p.run.ID,
		"short_url", short.ShortURL,
		"duration", time.Since(p.run.Started).String())

	return short, nil
}

func (p *Pipeline) enter(s State) {
	p.state = s
	logger.Debug("Pipeline state", "run_id", p.run.ID, "state", s.String())
}

func (p *Pipeline) fail(err error) error {
	failedIn := p.state
	p.state = StateFailed
	logger.Debug("Pipeline failed", "run_id", p.run.ID, "state", failedIn.String(), "kind", core.KindOf(err).String())
	return err
}
