package github

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Release is a GitHub release as reported by gh release list
type Release struct {
	TagName string `json:"tagName"`
	Name    string `json:"name"`
	IsDraft bool   `json:"isDraft"`
}

// ListReleases queries the most recent releases of the repository in dir
func ListReleases(ctx context.Context, bin, dir string, limit int) ([]Release, error) {
	if bin == "" {
		bin = DefaultTool
	}
	cmd := exec.CommandContext(ctx, bin, "release", "list",
		"--json", "tagName,name,isDraft",
		"--limit", strconv.Itoa(limit),
	)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return nil, &ToolError{Command: bin + " release list", Err: err}
	}

	var releases []Release
	if err := json.Unmarshal(output, &releases); err != nil {
		return nil, fmt.Errorf("failed to parse releases: %w", err)
	}
	return releases, nil
}

// FindRelease returns the release tagged tag, or nil when there is none
func FindRelease(releases []Release, tag string) *Release {
	for i := range releases {
		if releases[i].TagName == tag {
			return &releases[i]
		}
	}
	return nil
}
