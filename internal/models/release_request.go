package models

// ReleaseRequest is everything the release tool needs to create one release
type ReleaseRequest struct {
	// Tag is the version string, used as the release tag
	Tag string
	// Title shown on the release page (same as Tag)
	Title string
	// Notes is the release body; empty means no body is sent
	Notes string
	// Draft keeps the release unpublished
	Draft bool
	// Prerelease marks the release as a pre-release
	Prerelease bool
}

// NewReleaseRequest creates a draft release request titled after its version
func NewReleaseRequest(version, notes string) ReleaseRequest {
	return ReleaseRequest{
		Tag:   version,
		Title: version,
		Notes: notes,
		Draft: true,
	}
}

// HasNotes reports whether a release body will be sent
func (r ReleaseRequest) HasNotes() bool {
	return r.Notes != ""
}
