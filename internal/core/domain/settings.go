package domain

import "path/filepath"

// Scope is one of the three configuration tiers.
type Scope int

const (
	// ScopeCommunity is the repository-level tier under the current directory.
	ScopeCommunity Scope = iota
	// ScopeProfile is the user-level tier under the home directory.
	ScopeProfile
	// ScopeProject is the per-project tier inside the profile.
	ScopeProject
)

// Scopes lists the tiers in merge order.
var Scopes = []Scope{ScopeCommunity, ScopeProfile, ScopeProject}

// String returns the tier name.
func (s Scope) String() string {
	switch s {
	case ScopeCommunity:
		return "community"
	case ScopeProfile:
		return "profile"
	case ScopeProject:
		return "project"
	default:
		return "unknown"
	}
}

// Settings is the configuration derived once at process entry.
// Every path the tool touches is computed from it.
type Settings struct {
	// CommunityRoot is the absolute current working directory.
	CommunityRoot string
	// ProjectName is the base name of CommunityRoot.
	ProjectName string
	// Home is the invoking user's home directory.
	Home string
	// User is the invoking user name.
	User string
	// Shell is the invoking user's shell.
	Shell string
	// UID is the invoking user's numeric id.
	UID int
	// DockerGID is the host's docker group id.
	DockerGID int
}

// CommunityDir returns <cwd>/.containment.
func (s *Settings) CommunityDir() string {
	return filepath.Join(s.CommunityRoot, ScopeDirName)
}

// ProfileDir returns <home>/.containment.
func (s *Settings) ProfileDir() string {
	return filepath.Join(s.Home, ScopeDirName)
}

// ProjectsDir returns <profile>/projects.
func (s *Settings) ProjectsDir() string {
	return filepath.Join(s.ProfileDir(), ProjectsDirName)
}

// ProjectDir returns <profile>/projects/<project-name>.
func (s *Settings) ProjectDir() string {
	return filepath.Join(s.ProjectsDir(), s.ProjectName)
}

// ScopeDir returns the directory owned by scope.
func (s *Settings) ScopeDir(scope Scope) string {
	switch scope {
	case ScopeProfile:
		return s.ProfileDir()
	case ScopeProject:
		return s.ProjectDir()
	default:
		return s.CommunityDir()
	}
}

// ScopeFile returns the path of name inside scope.
func (s *Settings) ScopeFile(scope Scope, name string) string {
	return filepath.Join(s.ScopeDir(scope), name)
}

// ImageTag returns containment/<project-name>:latest.
func (s *Settings) ImageTag() string {
	return TagPrefix + s.ProjectName + ":latest"
}
