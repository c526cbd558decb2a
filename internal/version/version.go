// Package version compares release versions and carries the build version
// of the draftrel binary itself.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is set at build time with -ldflags "-X .../internal/version.Version=..."
var Version = "dev"

// canonical adds the "v" prefix golang.org/x/mod/semver expects
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// IsPrerelease reports whether v is a semantic version with a pre-release suffix
func IsPrerelease(v string) bool {
	c := canonical(v)
	return semver.IsValid(c) && semver.Prerelease(c) != ""
}

// Newer reports whether candidate sorts after current. Versions that are not
// semver fall back to a plain string comparison.
func Newer(candidate, current string) bool {
	a, b := canonical(candidate), canonical(current)
	if semver.IsValid(a) && semver.IsValid(b) {
		return semver.Compare(a, b) > 0
	}
	return strings.TrimPrefix(a, "v") > strings.TrimPrefix(b, "v")
}
