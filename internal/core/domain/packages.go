package domain

// OSPackages is an ordered list of OS package names.
type OSPackages []string

// Ecosystem is one entry of a language package map.
type Ecosystem struct {
	Name     string
	Packages []string
}

// LangPackages is a language package map that keeps the key order of the
// document it was read from.
type LangPackages []Ecosystem

// Set assigns pkgs to name. An existing key keeps its position.
func (l LangPackages) Set(name string, pkgs []string) LangPackages {
	for i := range l {
		if l[i].Name == name {
			l[i].Packages = pkgs
			return l
		}
	}
	return append(l, Ecosystem{Name: name, Packages: pkgs})
}

// ScopePackages holds the package sets read from one scope.
type ScopePackages struct {
	OS   OSPackages
	Lang LangPackages
}
