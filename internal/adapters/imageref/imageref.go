// Package imageref validates base image references and derives the facts
// the rest of the tool needs from them.
package imageref

import (
	"path"

	"github.com/distribution/reference"
	"github.com/opencontainers/go-digest"
	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// Ref is a parsed, normalized image reference.
type Ref struct {
	// Original is the reference as written in the configuration.
	Original string
	// Name is the fully qualified repository, e.g. docker.io/library/ubuntu.
	Name string
	// Familiar is the short repository name, e.g. ubuntu.
	Familiar string
	// Tag is empty when the reference carries no tag.
	Tag string
	// Digest is empty when the reference is not pinned.
	Digest digest.Digest
}

// Parse validates s as a normalized image reference. A pinned digest must use
// an available algorithm and have a well-formed encoding.
func Parse(s string) (Ref, error) {
	named, err := reference.ParseNormalizedNamed(s)
	if err != nil {
		return Ref{}, zerr.With(domain.Fail(domain.ErrInvalidImageReference, err), "image", s)
	}

	ref := Ref{
		Original: s,
		Name:     named.Name(),
		Familiar: reference.FamiliarName(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		ref.Digest = digested.Digest()
		if err := ref.Digest.Validate(); err != nil {
			return Ref{}, zerr.With(domain.Fail(domain.ErrInvalidImageReference, err), "image", s)
		}
	}

	return ref, nil
}

// Pinned reports whether the reference carries a digest.
func (r Ref) Pinned() bool {
	return r.Digest != ""
}

// LastElement returns the final path element of the repository, e.g. ubuntu
// for docker.io/library/ubuntu.
func (r Ref) LastElement() string {
	return path.Base(r.Name)
}

// InferPackager matches the last path element of the repository exactly
// against the known packagers. It returns "" when nothing matches.
func (r Ref) InferPackager() domain.Packager {
	p := domain.Packager(r.LastElement())
	if !p.Known() {
		return ""
	}
	return p
}

// Validate parses img.Reference and checks that a declared packager is known.
// An empty packager is allowed; the assembler rejects it only when OS
// packages are requested.
func Validate(img domain.BaseImage) (Ref, error) {
	ref, err := Parse(img.Reference)
	if err != nil {
		return Ref{}, err
	}
	if img.Packager != "" && !img.Packager.Known() {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownPackager, "packager is not in the installer table"), "packager", string(img.Packager))
		return Ref{}, zerr.With(err, "image", img.Reference)
	}
	return ref, nil
}
