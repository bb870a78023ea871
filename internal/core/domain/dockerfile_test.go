package domain_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

func testSettings() *domain.Settings {
	return &domain.Settings{
		CommunityRoot: "/work/acme",
		ProjectName:   "acme",
		Home:          "/home/ada",
		User:          "ada",
		Shell:         "/bin/bash",
		UID:           1000,
		DockerGID:     998,
	}
}

func emptyAssembly() *domain.Assembly {
	img := domain.DefaultImage()
	return &domain.Assembly{
		Base:     domain.BaseText(img),
		Image:    img,
		Settings: testSettings(),
	}
}

func TestOSLayer(t *testing.T) {
	ubuntu := domain.BaseImage{Reference: "ubuntu:24.04", Packager: domain.PackagerUbuntu}

	tests := []struct {
		name string
		pkgs domain.OSPackages
		img  domain.BaseImage
		want string
	}{
		{name: "empty list", pkgs: nil, img: ubuntu, want: ""},
		{name: "empty names", pkgs: domain.OSPackages{""}, img: ubuntu, want: ""},
		{name: "single package", pkgs: domain.OSPackages{"git"}, img: ubuntu, want: "RUN    apt-get install -y git"},
		{name: "keeps order", pkgs: domain.OSPackages{"curl", "jq"}, img: ubuntu, want: "RUN    apt-get install -y curl jq"},
		{
			name: "debian packager",
			pkgs: domain.OSPackages{"vim"},
			img:  domain.BaseImage{Reference: "debian:bookworm", Packager: domain.PackagerDebian},
			want: "RUN    apt-get install -y vim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.OSLayer(tt.pkgs, tt.img)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSLayer_UnknownPackager(t *testing.T) {
	img := domain.BaseImage{Reference: "alpine:3.20", Packager: "apk"}

	got, err := domain.OSLayer(domain.OSPackages{"git"}, img)
	require.ErrorIs(t, err, domain.ErrUnknownPackager)
	assert.Empty(t, got)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "alpine:3.20", zErr.Metadata()["image"])

	// No packages means no installer is needed.
	got, err = domain.OSLayer(nil, img)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLangLayer(t *testing.T) {
	tests := []struct {
		name        string
		lang        domain.LangPackages
		want        string
		wantSkipped []string
	}{
		{name: "empty map", lang: nil, want: ""},
		{
			name: "python3",
			lang: domain.LangPackages{{Name: "python3", Packages: []string{"requests"}}},
			want: "RUN    `which pip3` install requests\n",
		},
		{
			name:        "unknown ecosystem dropped",
			lang:        domain.LangPackages{{Name: "unknown-ecosystem", Packages: []string{"x"}}},
			want:        "",
			wantSkipped: []string{"unknown-ecosystem"},
		},
		{
			name: "document order preserved",
			lang: domain.LangPackages{
				{Name: "python", Packages: []string{"six"}},
				{Name: "npm", Packages: []string{"left-pad"}},
				{Name: "python3", Packages: []string{"requests", "rich"}},
			},
			want:        "RUN    `which pip` install six\nRUN    `which pip3` install requests rich\n",
			wantSkipped: []string{"npm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, skipped := domain.LangLayer(tt.lang)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestLangLayer_OneLinePerKnownKey(t *testing.T) {
	lang := domain.LangPackages{
		{Name: "python3", Packages: []string{"a"}},
		{Name: "cargo", Packages: []string{"b"}},
		{Name: "ubuntu", Packages: []string{"c"}},
		{Name: "gem", Packages: []string{"d"}},
		{Name: "python", Packages: []string{"e"}},
	}

	got, skipped := domain.LangLayer(lang)
	assert.Equal(t, 3, strings.Count(got, "RUN "))
	assert.Len(t, skipped, 2)
}

func TestAssemble_EmptyScopes(t *testing.T) {
	a := emptyAssembly()

	got, skipped, err := a.Assemble()
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, a.Base+"\n\n\n\n\n\n\n"+domain.Trailer(a.Settings), got)
}

func TestAssemble_ProjectOSLayer(t *testing.T) {
	a := emptyAssembly()
	a.Layers[domain.ScopeProject].OS = domain.OSPackages{"curl", "jq"}

	got, _, err := a.Assemble()
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	// base (2 lines), community OS, profile OS, project OS
	assert.Equal(t, "RUN    apt-get install -y curl jq", lines[4])
}

func TestAssemble_ProfileLangLayer(t *testing.T) {
	a := emptyAssembly()
	a.Layers[domain.ScopeProfile].Lang = domain.LangPackages{{Name: "python3", Packages: []string{"requests"}}}

	got, _, err := a.Assemble()
	require.NoError(t, err)

	want := a.Base + "\n\n\n\n\n" + "RUN    `which pip3` install requests\n" + "\n\n" + domain.Trailer(a.Settings)
	assert.Equal(t, want, got)
}

func TestAssemble_CommunityUnknownEcosystem(t *testing.T) {
	a := emptyAssembly()
	a.Layers[domain.ScopeCommunity].Lang = domain.LangPackages{{Name: "unknown-ecosystem", Packages: []string{"x"}}}

	got, skipped, err := a.Assemble()
	require.NoError(t, err)
	assert.Equal(t, a.Base+"\n\n\n\n\n\n\n"+domain.Trailer(a.Settings), got)
	assert.Equal(t, []domain.SkippedEcosystem{{Scope: domain.ScopeCommunity, Ecosystem: "unknown-ecosystem"}}, skipped)
}

func TestAssemble_UnknownPackagerNamesScope(t *testing.T) {
	a := emptyAssembly()
	a.Image.Packager = ""
	a.Layers[domain.ScopeProfile].OS = domain.OSPackages{"vim"}

	_, _, err := a.Assemble()
	require.ErrorIs(t, err, domain.ErrUnknownPackager)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "profile", zErr.Metadata()["scope"])
}

func TestAssemble_Deterministic(t *testing.T) {
	build := func() string {
		a := emptyAssembly()
		a.Layers[domain.ScopeCommunity].OS = domain.OSPackages{"build-essential"}
		a.Layers[domain.ScopeProfile].OS = domain.OSPackages{"vim", "tmux", "git"}
		a.Layers[domain.ScopeProject].Lang = domain.LangPackages{
			{Name: "python3", Packages: []string{"requests"}},
			{Name: "python", Packages: []string{"six"}},
		}
		got, _, err := a.Assemble()
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, build(), build())
}

func TestAssemble_Golden(t *testing.T) {
	a := emptyAssembly()
	a.Layers[domain.ScopeCommunity].OS = domain.OSPackages{"build-essential"}
	a.Layers[domain.ScopeProfile].OS = domain.OSPackages{"vim", "tmux", "git"}
	a.Layers[domain.ScopeProject].OS = domain.OSPackages{"curl", "jq"}
	a.Layers[domain.ScopeProfile].Lang = domain.LangPackages{{Name: "python3", Packages: []string{"requests"}}}
	a.Layers[domain.ScopeProject].Lang = domain.LangPackages{
		{Name: "python", Packages: []string{"six"}},
		{Name: "python3", Packages: []string{"rich", "typer"}},
	}

	got, _, err := a.Assemble()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "dockerfile_full", []byte(got))
}

func TestScripts_Golden(t *testing.T) {
	s := testSettings()
	g := goldie.New(t)
	g.Assert(t, "entrypoint", []byte(domain.EntrypointScript(s)))
	g.Assert(t, "run_script", []byte(domain.RunScript(s)))
}

func TestLangPackages_Set(t *testing.T) {
	var lang domain.LangPackages
	lang = lang.Set("python3", []string{"a"})
	lang = lang.Set("python", []string{"b"})
	lang = lang.Set("python3", []string{"c"})

	assert.Equal(t, domain.LangPackages{
		{Name: "python3", Packages: []string{"c"}},
		{Name: "python", Packages: []string{"b"}},
	}, lang)
}
