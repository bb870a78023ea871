package config

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// DockerGroup is the host group whose id is granted inside the container.
const DockerGroup = "docker"

// Environment resolves Settings from the process environment.
// The function fields default to the os and os/user implementations and are
// replaced in tests.
type Environment struct {
	LookupEnv   func(key string) (string, bool)
	Getwd       func() (string, error)
	Getuid      func() int
	LookupGroup func(name string) (*user.Group, error)
}

// NewEnvironment creates an Environment backed by the running process.
func NewEnvironment() *Environment {
	return &Environment{
		LookupEnv:   os.LookupEnv,
		Getwd:       os.Getwd,
		Getuid:      os.Getuid,
		LookupGroup: user.LookupGroup,
	}
}

// Resolve implements ports.SettingsResolver.
func (e *Environment) Resolve() (*domain.Settings, error) {
	cwd, err := e.Getwd()
	if err != nil {
		return nil, domain.Fail(domain.ErrScopeReadFailed, err)
	}
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", cwd)
	}

	name := filepath.Base(root)
	if root == filepath.Dir(root) || name == "." || name == string(filepath.Separator) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProjectDir, "run from a project directory"), "path", root)
	}

	s := &domain.Settings{
		CommunityRoot: root,
		ProjectName:   name,
		UID:           e.Getuid(),
	}

	for _, v := range []struct {
		key    string
		target *string
	}{
		{"HOME", &s.Home},
		{"USER", &s.User},
		{"SHELL", &s.Shell},
	} {
		value, ok := e.LookupEnv(v.key)
		if !ok || value == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingEnvironment, "cannot resolve settings"), "variable", v.key)
		}
		*v.target = value
	}

	gid, err := e.dockerGID()
	if err != nil {
		return nil, err
	}
	s.DockerGID = gid

	return s, nil
}

func (e *Environment) dockerGID() (int, error) {
	group, err := e.LookupGroup(DockerGroup)
	if err != nil {
		var unknown user.UnknownGroupError
		if errors.As(err, &unknown) {
			return 0, zerr.With(zerr.Wrap(domain.ErrDockerGroupNotFound, "host group database has no entry"), "group", DockerGroup)
		}
		return 0, zerr.With(domain.Fail(domain.ErrDockerGroupNotFound, err), "group", DockerGroup)
	}

	gid, err := strconv.Atoi(group.Gid)
	if err != nil {
		return 0, zerr.With(domain.Fail(domain.ErrDockerGroupNotFound, err), "gid", group.Gid)
	}
	return gid, nil
}
