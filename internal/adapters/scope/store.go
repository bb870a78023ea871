// Package scope creates and inspects the on-disk scope directories.
package scope

import (
	"errors"
	"io/fs"
	"os"

	"github.com/zancas/containment/internal/adapters/config"
	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultProfilePackages is the os_packages.json written into a new profile.
const DefaultProfilePackages = `["vim", "tmux", "git"]`

// Store implements ports.ScopeStore on the local filesystem.
type Store struct {
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{writeFile: os.WriteFile}
}

// file is one default file written when a scope is paved.
type file struct {
	name    string
	content []byte
	perm    os.FileMode
}

// Exists reports whether the scope directory is present.
func (st *Store) Exists(s *domain.Settings, scope domain.Scope) (bool, error) {
	return dirExists(s.ScopeDir(scope))
}

// Pave creates the scope directory and its default files. It never touches an
// existing scope.
func (st *Store) Pave(s *domain.Settings, scope domain.Scope) error {
	dir := s.ScopeDir(scope)

	exists, err := dirExists(dir)
	if err != nil {
		return err
	}
	if exists {
		err := zerr.Wrap(domain.ErrScopeExists, "refusing to overwrite scope")
		return zerr.With(zerr.With(err, "scope", scope.String()), "path", dir)
	}

	files, err := defaultFiles(s, scope)
	if err != nil {
		return err
	}

	if scope == domain.ScopeProject {
		parent, err := dirExists(s.ProjectsDir())
		if err != nil {
			return err
		}
		if !parent {
			err := zerr.Wrap(domain.ErrScopeMissing, "project scope lives inside the profile")
			return zerr.With(zerr.With(err, "scope", domain.ScopeProfile.String()), "path", s.ProjectsDir())
		}
	}

	if err := os.Mkdir(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrScopeCreateFailed, err), "path", dir)
	}

	if err := st.populate(s, scope, files); err != nil {
		// Leave no partial scope behind; Pave refuses existing directories.
		_ = os.RemoveAll(dir)
		return err
	}
	return nil
}

// populate fills a freshly created scope directory.
func (st *Store) populate(s *domain.Settings, scope domain.Scope, files []file) error {
	if scope == domain.ScopeProfile {
		if err := os.Mkdir(s.ProjectsDir(), domain.DirPerm); err != nil {
			return zerr.With(domain.Fail(domain.ErrScopeCreateFailed, err), "path", s.ProjectsDir())
		}
	}

	for _, f := range files {
		path := s.ScopeFile(scope, f.name)
		if err := st.writeFile(path, f.content, f.perm); err != nil {
			return zerr.With(domain.Fail(domain.ErrScopeCreateFailed, err), "path", path)
		}
	}
	return nil
}

func defaultFiles(s *domain.Settings, scope domain.Scope) ([]file, error) {
	switch scope {
	case domain.ScopeCommunity:
		img := domain.DefaultImage()
		settings, err := config.MarshalImage(img)
		if err != nil {
			return nil, domain.Fail(domain.ErrScopeCreateFailed, err)
		}
		return []file{
			{domain.BaseFileName, []byte(domain.BaseText(img)), domain.FilePerm},
			{domain.OSPackagesFileName, []byte("[]"), domain.FilePerm},
			{domain.ImageSettingsFileName, settings, domain.FilePerm},
		}, nil
	case domain.ScopeProfile:
		return []file{
			{domain.OSPackagesFileName, []byte(DefaultProfilePackages), domain.FilePerm},
			{domain.LangPackagesFileName, []byte("{}"), domain.FilePerm},
		}, nil
	default:
		return []file{
			{domain.EntrypointName, []byte(domain.EntrypointScript(s)), domain.ExecPerm},
			{domain.RunScriptName, []byte(domain.RunScript(s)), domain.FilePerm},
			{domain.OSPackagesFileName, []byte("[]"), domain.FilePerm},
			{domain.LangPackagesFileName, []byte("{}"), domain.FilePerm},
		}, nil
	}
}

// WriteDockerfile overwrites the project Dockerfile with text.
func (st *Store) WriteDockerfile(s *domain.Settings, text string) error {
	path := s.ScopeFile(domain.ScopeProject, domain.DockerfileName)
	if err := os.WriteFile(path, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrDockerfileWriteFailed, err), "path", path)
	}
	return nil
}

// ReadDockerfile returns the project Dockerfile, or nil when none was written.
func (st *Store) ReadDockerfile(s *domain.Settings) ([]byte, error) {
	path := s.ScopeFile(domain.ScopeProject, domain.DockerfileName)
	// #nosec G304 -- path is derived from resolved settings
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", path)
	}
	return data, nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", path)
	}
	if !info.IsDir() {
		err := zerr.Wrap(domain.ErrScopeReadFailed, "scope path is not a directory")
		return false, zerr.With(err, "path", path)
	}
	return true, nil
}
