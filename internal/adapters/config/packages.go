package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// readFile reads path, anchoring failures to ErrScopeReadFailed.
func readFile(path string) ([]byte, error) {
	// #nosec G304 -- path is derived from resolved settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", path)
	}
	return data, nil
}

func invalidPackageFile(path string, cause error) error {
	return zerr.With(domain.Fail(domain.ErrPackageFileInvalid, cause), "path", path)
}

// ReadOSPackages reads an os_packages.json file: a JSON array of strings.
func ReadOSPackages(path string) (domain.OSPackages, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOSPackages(path, data)
}

// ParseOSPackages decodes os_packages.json content. path is used in errors only.
func ParseOSPackages(path string, data []byte) (domain.OSPackages, error) {
	var pkgs []string
	if err := json.Unmarshal(data, &pkgs); err != nil {
		return nil, invalidPackageFile(path, err)
	}
	return domain.OSPackages(pkgs), nil
}

// ReadLangPackages reads a lang_packages.json file. When optional is set a
// missing file reads as an empty map.
func ReadLangPackages(path string, optional bool) (domain.LangPackages, error) {
	// #nosec G304 -- path is derived from resolved settings
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Fail(domain.ErrScopeReadFailed, err), "path", path)
	}
	return ParseLangPackages(path, data)
}

// ParseLangPackages decodes lang_packages.json content: a JSON object from
// ecosystem name to an array of package names, or null for none. Keys keep
// document order; a repeated key keeps its first position and its last value.
func ParseLangPackages(path string, data []byte) (domain.LangPackages, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, invalidPackageFile(path, err)
	}
	if tok == nil {
		// null lists no packages, as it does for os_packages.json.
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, invalidPackageFile(path, zerr.New("unexpected data after JSON null"))
		}
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, invalidPackageFile(path, zerr.New("expected a JSON object"))
	}

	var lang domain.LangPackages
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, invalidPackageFile(path, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, invalidPackageFile(path, zerr.New("expected an object key"))
		}

		var pkgs []string
		if err := dec.Decode(&pkgs); err != nil {
			return nil, zerr.With(invalidPackageFile(path, err), "ecosystem", key)
		}
		lang = lang.Set(key, pkgs)
	}

	if _, err := dec.Token(); err != nil {
		return nil, invalidPackageFile(path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, invalidPackageFile(path, zerr.New("unexpected data after JSON object"))
	}

	return lang, nil
}
