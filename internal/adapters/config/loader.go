// Package config reads the layered scope configuration and resolves the
// process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/zancas/containment/internal/adapters/imageref"
	"github.com/zancas/containment/internal/core/domain"
	"github.com/zancas/containment/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader over the scope directories.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the base fragment, the image settings and all six package files.
func (l *Loader) Load(s *domain.Settings) (*domain.Assembly, error) {
	base, err := readFile(s.ScopeFile(domain.ScopeCommunity, domain.BaseFileName))
	if err != nil {
		return nil, err
	}

	img, err := l.loadImage(s, string(base))
	if err != nil {
		return nil, err
	}

	a := &domain.Assembly{
		Base:     string(base),
		Image:    img,
		Settings: s,
	}

	for _, scope := range domain.Scopes {
		pkgs, err := l.loadScope(s, scope)
		if err != nil {
			return nil, zerr.With(err, "scope", scope.String())
		}
		a.Layers[scope] = pkgs
	}

	return a, nil
}

// LoadImage reads the community image settings, falling back to the FROM line
// of the base fragment when containment.yaml is absent.
func (l *Loader) LoadImage(s *domain.Settings) (domain.BaseImage, error) {
	base, err := readFile(s.ScopeFile(domain.ScopeCommunity, domain.BaseFileName))
	if err != nil {
		return domain.BaseImage{}, err
	}
	return l.loadImage(s, string(base))
}

func (l *Loader) loadScope(s *domain.Settings, scope domain.Scope) (domain.ScopePackages, error) {
	osPkgs, err := ReadOSPackages(s.ScopeFile(scope, domain.OSPackagesFileName))
	if err != nil {
		return domain.ScopePackages{}, err
	}

	// The community scope is never paved with a language map.
	lang, err := ReadLangPackages(s.ScopeFile(scope, domain.LangPackagesFileName), scope == domain.ScopeCommunity)
	if err != nil {
		return domain.ScopePackages{}, err
	}

	return domain.ScopePackages{OS: osPkgs, Lang: lang}, nil
}

func (l *Loader) loadImage(s *domain.Settings, base string) (domain.BaseImage, error) {
	from, fromErr := FromImage(base)

	path := s.ScopeFile(domain.ScopeCommunity, domain.ImageSettingsFileName)
	// #nosec G304 -- path is derived from resolved settings
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if fromErr != nil {
			return domain.BaseImage{}, zerr.With(fromErr, "path", s.ScopeFile(domain.ScopeCommunity, domain.BaseFileName))
		}
		return l.resolveImage(from, "")
	case err != nil:
		return domain.BaseImage{}, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", path)
	}

	file, err := unmarshalImage(data)
	if err != nil {
		return domain.BaseImage{}, zerr.With(domain.Fail(domain.ErrImageSettingsInvalid, err), "path", path)
	}
	if file.Image == "" {
		err := zerr.Wrap(domain.ErrImageSettingsInvalid, "image is required")
		return domain.BaseImage{}, zerr.With(err, "path", path)
	}

	if fromErr == nil && from != file.Image {
		l.Logger.Warn(fmt.Sprintf("%s declares %s but %s starts FROM %s",
			domain.ImageSettingsFileName, file.Image, domain.BaseFileName, from))
	}

	img, err := l.resolveImage(file.Image, domain.Packager(file.Packager))
	if err != nil {
		return domain.BaseImage{}, zerr.With(err, "path", path)
	}
	return img, nil
}

func (l *Loader) resolveImage(reference string, packager domain.Packager) (domain.BaseImage, error) {
	img := domain.BaseImage{Reference: reference, Packager: packager}
	ref, err := imageref.Validate(img)
	if err != nil {
		return domain.BaseImage{}, err
	}
	if img.Packager == "" {
		img.Packager = ref.InferPackager()
	}
	return img, nil
}

// FromImage returns the image of the first FROM instruction in a Dockerfile
// fragment. Build flags such as --platform are skipped.
func FromImage(fragment string) (string, error) {
	for line := range strings.Lines(fragment) {
		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.EqualFold(fields[0], "FROM") {
			continue
		}
		for _, field := range fields[1:] {
			if strings.HasPrefix(field, "--") {
				continue
			}
			return field, nil
		}
	}
	return "", zerr.Wrap(domain.ErrImageSettingsInvalid, "base fragment has no FROM instruction")
}
