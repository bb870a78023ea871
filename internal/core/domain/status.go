package domain

// ScopeStatus reports whether one scope directory exists.
type ScopeStatus struct {
	Scope Scope
	Dir   string
	Paved bool
}

// Status summarises the state of a project.
type Status struct {
	Scopes []ScopeStatus
	// Image is nil when the community scope has not been paved.
	Image *BaseImage
	Tag   string
	// Fingerprint identifies the Dockerfile on disk; empty when there is none.
	Fingerprint string
	// LastBuild is nil when the project has never been built.
	LastBuild    *BuildRecord
	ImagePresent bool
}

// Stale reports whether the Dockerfile on disk differs from the one last built.
func (s *Status) Stale() bool {
	if s.Fingerprint == "" {
		return false
	}
	return s.LastBuild == nil || s.LastBuild.Fingerprint != s.Fingerprint
}
