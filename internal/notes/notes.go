// Package notes collects the release body: the list of commits made since
// the previous release tag.
package notes

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/draftrel/internal/git"
	"github.com/wahlandcase/draftrel/internal/models"
)

// Collector produces release notes text
type Collector interface {
	Collect(ctx context.Context) (string, error)
}

// Trim strips leading and trailing whitespace. Applying it twice is a no-op.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Gather runs c and applies policy to a failure. With models.FailureEmpty the
// error is logged and the release goes out without notes.
func Gather(ctx context.Context, c Collector, policy models.FailurePolicy, log logrus.FieldLogger) (string, error) {
	text, err := c.Collect(ctx)
	if err != nil {
		if policy == models.FailureEmpty {
			log.WithError(err).Warn("could not collect release notes, continuing without them")
			return "", nil
		}
		return "", err
	}
	return Trim(text), nil
}

// GitCollector lists commits since the last tag straight from the repository
type GitCollector struct {
	RepoPath string
	Log      logrus.FieldLogger
}

func (c GitCollector) Collect(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	commits, tag, err := git.CommitsSinceLastTag(c.RepoPath)
	if err != nil {
		return "", err
	}
	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{"tag": tag, "commits": len(commits)}).Debug("walked history since last tag")
	}
	return Trim(git.FormatCommitList(commits)), nil
}
