// Package release runs one draft release: read the build file, extract its
// version, collect notes and hand the request to a Publisher.
package release

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/draftrel/internal/buildfile"
	"github.com/wahlandcase/draftrel/internal/models"
	"github.com/wahlandcase/draftrel/internal/notes"
	"github.com/wahlandcase/draftrel/internal/ui"
	"github.com/wahlandcase/draftrel/internal/version"
)

// Publisher creates a draft release in the hosting system
type Publisher interface {
	CreateDraft(ctx context.Context, req models.ReleaseRequest) error
}

// ConfirmFunc asks the user whether req should be published
type ConfirmFunc func(req models.ReleaseRequest, buildFile string) (bool, error)

type Options struct {
	// BuildFile is the resolved path of the build script
	BuildFile string
	Format    models.BuildFormat
	// Notes is nil when the release goes out without a body
	Notes          notes.Collector
	OnNotesFailure models.FailurePolicy
	// MarkPrerelease flags semver pre-release versions as pre-releases
	MarkPrerelease bool
	Publisher      Publisher
	// Confirm is nil for non-interactive runs
	Confirm ConfirmFunc
	Printer ui.Printer
	Log     logrus.FieldLogger
}

// Result describes what a run did
type Result struct {
	Request   models.ReleaseRequest
	Format    models.BuildFormat
	Published bool
}

// Run performs read → extract → collect notes → publish. The first error
// aborts the run; nothing is published after a failed step.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}
	if opts.Printer.Out == nil {
		opts.Printer.Out = io.Discard
	}

	log.WithFields(logrus.Fields{"file": opts.BuildFile, "format": opts.Format}).Debug("reading build file")
	v, format, err := buildfile.VersionFromFile(opts.BuildFile, opts.Format)
	if err != nil {
		return nil, err
	}
	log.WithField("format", format).Debug("matched version declaration")
	opts.Printer.Version(v)

	var text string
	if opts.Notes != nil {
		text, err = notes.Gather(ctx, opts.Notes, opts.OnNotesFailure, log)
		if err != nil {
			return nil, err
		}
		if text == "" {
			opts.Printer.Skipped("No release notes")
		}
	}

	req := models.NewReleaseRequest(v, text)
	req.Prerelease = opts.MarkPrerelease && version.IsPrerelease(v)
	result := &Result{Request: req, Format: format}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(req, opts.BuildFile)
		if err != nil {
			return nil, err
		}
		if !ok {
			opts.Printer.Skipped("Release cancelled")
			return result, nil
		}
	}

	if err := opts.Publisher.CreateDraft(ctx, req); err != nil {
		return nil, err
	}
	result.Published = true
	return result, nil
}
