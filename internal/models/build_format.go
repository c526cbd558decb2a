package models

import "fmt"

// BuildFormat selects which versionName declaration syntax to look for
type BuildFormat int

const (
	// FormatAuto tries every known syntax in order and takes the first match
	FormatAuto BuildFormat = iota
	// FormatSingleQuoted matches versionName = '1.2.3' (Groovy DSL)
	FormatSingleQuoted
	// FormatQuotedKey matches "versionName" = "1.2.3"
	FormatQuotedKey
	// FormatDoubleQuoted matches versionName = "1.2.3" (Kotlin DSL)
	FormatDoubleQuoted
)

// ConcreteFormats lists the formats FormatAuto tries, in order
var ConcreteFormats = []BuildFormat{
	FormatSingleQuoted,
	FormatQuotedKey,
	FormatDoubleQuoted,
}

// String returns the config-file spelling of the format
func (f BuildFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatSingleQuoted:
		return "single"
	case FormatQuotedKey:
		return "quoted-key"
	case FormatDoubleQuoted:
		return "double"
	default:
		return fmt.Sprintf("BuildFormat(%d)", int(f))
	}
}

// Example returns a sample declaration for display in errors and help text
func (f BuildFormat) Example() string {
	switch f {
	case FormatSingleQuoted:
		return "versionName = '1.0.0'"
	case FormatQuotedKey:
		return `"versionName" = "1.0.0"`
	case FormatDoubleQuoted:
		return `versionName = "1.0.0"`
	default:
		return "any versionName declaration"
	}
}

// ParseBuildFormat parses the config-file spelling of a format
func ParseBuildFormat(s string) (BuildFormat, error) {
	switch s {
	case "", "auto":
		return FormatAuto, nil
	case "single":
		return FormatSingleQuoted, nil
	case "quoted-key":
		return FormatQuotedKey, nil
	case "double":
		return FormatDoubleQuoted, nil
	default:
		return FormatAuto, fmt.Errorf("unknown build format %q (want auto, single, quoted-key or double)", s)
	}
}
