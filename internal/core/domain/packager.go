package domain

// Packager identifies a package installer known to the assembler.
// OS packagers are declared per base image; language packagers are the
// keys of a lang_packages.json map.
type Packager string

const (
	// PackagerDebian installs with apt-get on Debian images.
	PackagerDebian Packager = "debian"
	// PackagerUbuntu installs with apt-get on Ubuntu images.
	PackagerUbuntu Packager = "ubuntu"
	// PackagerPython3 installs with pip3.
	PackagerPython3 Packager = "python3"
	// PackagerPython installs with pip.
	PackagerPython Packager = "python"
)

var installers = map[Packager]string{
	PackagerDebian:  "apt-get install -y",
	PackagerUbuntu:  "apt-get install -y",
	PackagerPython3: "`which pip3` install",
	PackagerPython:  "`which pip` install",
}

// Installer returns the install command of p and whether p is known.
func (p Packager) Installer() (string, bool) {
	cmd, ok := installers[p]
	return cmd, ok
}

// Known reports whether p is in the installer table.
func (p Packager) Known() bool {
	_, ok := installers[p]
	return ok
}
