package buildfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/draftrel/internal/models"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		format models.BuildFormat
		want   string
	}{
		{"single quoted", "versionName = '2.3.1'", models.FormatSingleQuoted, "2.3.1"},
		{"quoted key", `"versionName" = "4.0.0-beta"`, models.FormatQuotedKey, "4.0.0-beta"},
		{"double quoted", `versionName = "1.0.0"`, models.FormatDoubleQuoted, "1.0.0"},
		{"auto single", "versionName = '2.3.1'", models.FormatAuto, "2.3.1"},
		{"auto quoted key", `"versionName" = "4.0.0-beta"`, models.FormatAuto, "4.0.0-beta"},
		{"auto double", `versionName = "1.0.0"`, models.FormatAuto, "1.0.0"},
		{"no spaces", `versionName="3.1"`, models.FormatDoubleQuoted, "3.1"},
		{"inside block", "android {\n    defaultConfig {\n        versionCode = 12\n        versionName = \"5.6.7\"\n    }\n}\n", models.FormatAuto, "5.6.7"},
		{"first match wins", "versionName = '1.0'\nversionName = '2.0'\n", models.FormatSingleQuoted, "1.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractVersion(tc.text, tc.format)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExtractVersionNotFound(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		format models.BuildFormat
	}{
		{"no key", "android { versionCode = 3 }", models.FormatAuto},
		{"empty text", "", models.FormatAuto},
		{"wrong format", `versionName = "1.0.0"`, models.FormatSingleQuoted},
		{"quoted key is not double", `"versionName" = "1.0.0"`, models.FormatDoubleQuoted},
		{"empty value", "versionName = ''", models.FormatAuto},
		{"prefixed key", `myversionName = "1.0.0"`, models.FormatDoubleQuoted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractVersion(tc.text, tc.format)
			require.Error(t, err)
			require.Empty(t, got)
			require.True(t, errors.Is(err, ErrPatternNotFound))

			var notFound *PatternNotFoundError
			require.True(t, errors.As(err, &notFound))
			require.Equal(t, tc.format, notFound.Format)
		})
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.gradle")
	require.NoError(t, os.WriteFile(path, []byte("versionName = '1.2.3'\n"), 0o644))

	text, err := ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "versionName = '1.2.3'\n", text)

	_, err = ReadText(filepath.Join(dir, "missing.gradle"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLocate(t *testing.T) {
	t.Run("prefers kotlin dsl", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "build.gradle"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "build.gradle.kts"), nil, 0o644))

		got, err := Locate(dir, "")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "build.gradle.kts"), got)
	})

	t.Run("falls back to groovy", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "build.gradle"), nil, 0o644))

		got, err := Locate(dir, "")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "build.gradle"), got)
	})

	t.Run("explicit relative path", func(t *testing.T) {
		dir := t.TempDir()
		got, err := Locate(dir, "app/build.gradle")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "app", "build.gradle"), got)
	})

	t.Run("nothing found", func(t *testing.T) {
		_, err := Locate(t.TempDir(), "")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestVersionFromFileAttachesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.gradle.kts")
	require.NoError(t, os.WriteFile(path, []byte("plugins { id(\"com.android.application\") }\n"), 0o644))

	_, _, err := VersionFromFile(path, models.FormatAuto)
	var notFound *PatternNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, path, notFound.Path)
	require.Contains(t, err.Error(), path)

	require.NoError(t, os.WriteFile(path, []byte("versionName = \"9.9.9\"\n"), 0o644))
	version, format, err := VersionFromFile(path, models.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, "9.9.9", version)
	require.Equal(t, models.FormatDoubleQuoted, format)
}
