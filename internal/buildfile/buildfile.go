// Package buildfile reads Gradle build scripts and pulls the declared
// versionName out of them.
package buildfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wahlandcase/draftrel/internal/models"
)

// Candidates are the build files looked for when none is configured, in order
var Candidates = []string{"build.gradle.kts", "build.gradle"}

// ErrPatternNotFound is matched by every *PatternNotFoundError
var ErrPatternNotFound = errors.New("version pattern not found")

// PatternNotFoundError reports that no versionName declaration matched
type PatternNotFoundError struct {
	Format models.BuildFormat
	Path   string
}

func (e *PatternNotFoundError) Error() string {
	where := "build file"
	if e.Path != "" {
		where = e.Path
	}
	if e.Format == models.FormatAuto {
		return fmt.Sprintf("no versionName declaration found in %s", where)
	}
	return fmt.Sprintf("no versionName declaration in %s format (%s) found in %s", e.Format, e.Format.Example(), where)
}

func (e *PatternNotFoundError) Is(target error) bool {
	return target == ErrPatternNotFound
}

var patterns = map[models.BuildFormat]*regexp.Regexp{
	models.FormatSingleQuoted: regexp.MustCompile(`\bversionName\s*=\s*'([^'\n]*)'`),
	models.FormatQuotedKey:    regexp.MustCompile(`"versionName"\s*=\s*"([^"\n]*)"`),
	// The bare key is followed by whitespace or '=', so the quoted-key form never matches here
	models.FormatDoubleQuoted: regexp.MustCompile(`\bversionName\s*=\s*"([^"\n]*)"`),
}

// ReadText returns the full contents of the build file at path.
// The file handle is released before returning, on success or failure.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Locate resolves which build file to read. An explicit path wins (relative
// paths are taken from dir); otherwise the first existing entry of Candidates.
func Locate(dir, explicit string) (string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(dir, explicit)
		}
		return explicit, nil
	}

	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s in %s: %w", strings.Join(Candidates, " or "), dir, fs.ErrNotExist)
}

// ExtractVersion returns the version declared in text using the given format.
// FormatAuto tries each of models.ConcreteFormats and keeps the first match.
func ExtractVersion(text string, format models.BuildFormat) (string, error) {
	version, _, err := extract(text, format)
	return version, err
}

func extract(text string, format models.BuildFormat) (string, models.BuildFormat, error) {
	formats := []models.BuildFormat{format}
	if format == models.FormatAuto {
		formats = models.ConcreteFormats
	}

	for _, f := range formats {
		re, ok := patterns[f]
		if !ok {
			return "", format, fmt.Errorf("unsupported build format %s", f)
		}
		match := re.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		// An empty declaration is treated the same as a missing one
		if version := strings.TrimSpace(match[1]); version != "" {
			return version, f, nil
		}
	}

	return "", format, &PatternNotFoundError{Format: format}
}

// VersionFromFile reads path and extracts its version in one step.
// A missing version is reported with the file path attached.
func VersionFromFile(path string, format models.BuildFormat) (string, models.BuildFormat, error) {
	text, err := ReadText(path)
	if err != nil {
		return "", format, err
	}

	version, detected, err := extract(text, format)
	if err != nil {
		var notFound *PatternNotFoundError
		if errors.As(err, &notFound) {
			notFound.Path = path
		}
		return "", format, err
	}
	return version, detected, nil
}
