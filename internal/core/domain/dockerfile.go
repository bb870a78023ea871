package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

const runPrefix = "RUN    "

// Assembly is everything the assembler needs to produce a Dockerfile.
type Assembly struct {
	// Base is the community base fragment.
	Base string
	// Image is the declared base image; its packager installs OS packages.
	Image BaseImage
	// Layers holds the package sets of each scope, indexed by Scope.
	Layers [3]ScopePackages
	// Settings supplies the user identity for the trailer.
	Settings *Settings
}

// SkippedEcosystem names a language map key that has no known installer.
type SkippedEcosystem struct {
	Scope     Scope
	Ecosystem string
}

// BaseText returns the community base fragment for img.
func BaseText(img BaseImage) string {
	return "FROM    " + img.Reference + "\n" +
		"RUN     apt-get update && apt-get install -y sudo docker.io"
}

// OSLayer returns the install line for pkgs, or "" when there is nothing to install.
func OSLayer(pkgs OSPackages, img BaseImage) (string, error) {
	packages := strings.Join(pkgs, " ")
	if packages == "" {
		return "", nil
	}
	installer, ok := img.Packager.Installer()
	if !ok {
		err := zerr.Wrap(ErrUnknownPackager, "cannot install OS packages")
		return "", zerr.With(zerr.With(err, "image", img.Reference), "packager", string(img.Packager))
	}
	return runPrefix + installer + " " + packages, nil
}

// LangLayer returns one install line per known ecosystem in lang, in order.
// Unknown ecosystems contribute nothing and are returned as skipped.
func LangLayer(lang LangPackages) (layer string, skipped []string) {
	var b strings.Builder
	for _, eco := range lang {
		installer, ok := Packager(eco.Name).Installer()
		if !ok {
			skipped = append(skipped, eco.Name)
			continue
		}
		b.WriteString(runPrefix + installer + " " + strings.Join(eco.Packages, " ") + "\n")
	}
	return b.String(), skipped
}

// Trailer returns the fixed user and entrypoint layer.
func Trailer(s *Settings) string {
	return fmt.Sprintf("RUN     useradd -G docker --uid %d --home /home/%s %s\n", s.UID, s.User, s.User) +
		fmt.Sprintf("RUN     echo %s ALL=\\(ALL\\) NOPASSWD: ALL >> /etc/sudoers\n", s.User) +
		"COPY    ./" + EntrypointName + " " + EntrypointName + "\n" +
		"RUN     chmod +x " + EntrypointName
}

// Assemble joins the base fragment, the six package layers and the trailer.
// OS layers come first, then language layers, each in community, profile,
// project order.
func (a *Assembly) Assemble() (string, []SkippedEcosystem, error) {
	parts := make([]string, 0, 8)
	parts = append(parts, a.Base)

	for _, scope := range Scopes {
		layer, err := OSLayer(a.Layers[scope].OS, a.Image)
		if err != nil {
			return "", nil, zerr.With(err, "scope", scope.String())
		}
		parts = append(parts, layer)
	}

	var skipped []SkippedEcosystem
	for _, scope := range Scopes {
		layer, unknown := LangLayer(a.Layers[scope].Lang)
		for _, name := range unknown {
			skipped = append(skipped, SkippedEcosystem{Scope: scope, Ecosystem: name})
		}
		parts = append(parts, layer)
	}

	parts = append(parts, Trailer(a.Settings))
	return strings.Join(parts, "\n"), skipped, nil
}
