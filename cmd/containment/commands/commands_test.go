package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zancas/containment/cmd/containment/commands"
	"github.com/zancas/containment/internal/build"
	"github.com/zancas/containment/internal/core/domain"
)

type mockApp struct {
	called []string
	err    error
	status *domain.Status
}

func (m *mockApp) record(name string) error {
	m.called = append(m.called, name)
	return m.err
}

func (m *mockApp) PaveCommunity(context.Context) error   { return m.record("PaveCommunity") }
func (m *mockApp) PaveProfile(context.Context) error     { return m.record("PaveProfile") }
func (m *mockApp) PaveProject(context.Context) error     { return m.record("PaveProject") }
func (m *mockApp) WriteDockerfile(context.Context) error { return m.record("WriteDockerfile") }
func (m *mockApp) Build(context.Context) error           { return m.record("Build") }
func (m *mockApp) Run(context.Context) error             { return m.record("Run") }
func (m *mockApp) Activate(context.Context) error        { return m.record("Activate") }
func (m *mockApp) Watch(context.Context) error           { return m.record("Watch") }

func (m *mockApp) Status(context.Context) (*domain.Status, error) {
	if err := m.record("Status"); err != nil {
		return nil, err
	}
	return m.status, nil
}

type mockLogger struct {
	json bool
}

func (l *mockLogger) Info(string)         {}
func (l *mockLogger) Warn(string)         {}
func (l *mockLogger) Error(error)         {}
func (l *mockLogger) SetJSON(enable bool) { l.json = enable }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a, &mockLogger{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Dispatch(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"pave_community"}, "PaveCommunity"},
		{[]string{"pave-community"}, "PaveCommunity"},
		{[]string{"pave_profile"}, "PaveProfile"},
		{[]string{"pave-profile"}, "PaveProfile"},
		{[]string{"pave_project"}, "PaveProject"},
		{[]string{"pave-project"}, "PaveProject"},
		{[]string{"write_dockerfile"}, "WriteDockerfile"},
		{[]string{"write-dockerfile"}, "WriteDockerfile"},
		{[]string{"build"}, "Build"},
		{[]string{"run"}, "Run"},
		{[]string{"activate"}, "Activate"},
		{[]string{"watch"}, "Watch"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, m.called)
		})
	}
}

func TestCommands_RejectsArguments(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "build", "extra")
	require.Error(t, err)
	assert.Empty(t, m.called)
}

func TestCommands_PropagatesError(t *testing.T) {
	m := &mockApp{err: &domain.ContainerExitError{Code: 7}}
	_, err := execute(t, m, "activate")

	var exitErr *domain.ContainerExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
}

func TestCommands_LogJSON(t *testing.T) {
	log := &mockLogger{}
	cli := commands.New(&mockApp{}, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--log-json", "write_dockerfile"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "containment version "+build.Version)
}

func TestCommands_Status(t *testing.T) {
	scopes := []domain.ScopeStatus{
		{Scope: domain.ScopeCommunity, Dir: "/work/demo/.containment", Paved: true},
		{Scope: domain.ScopeProfile, Dir: "/home/ada/.containment", Paved: true},
		{Scope: domain.ScopeProject, Dir: "/home/ada/.containment/projects/demo"},
	}

	tests := []struct {
		name   string
		status *domain.Status
	}{
		{
			name: "status_unbuilt",
			status: &domain.Status{
				Scopes: scopes,
				Image:  &domain.BaseImage{Reference: "ubuntu:24.04", Packager: domain.PackagerUbuntu},
				Tag:    "containment/demo:latest",
			},
		},
		{
			name: "status_built",
			status: &domain.Status{
				Scopes:      scopes,
				Image:       &domain.BaseImage{Reference: "registry.example.com/tools/base:1"},
				Tag:         "containment/demo:latest",
				Fingerprint: "0123456789abcdef",
				LastBuild: &domain.BuildRecord{
					Tag:         "containment/demo:latest",
					Fingerprint: "0123456789abcdef",
					BuiltAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				},
				ImagePresent: true,
			},
		},
		{
			name: "status_stale",
			status: &domain.Status{
				Scopes:      scopes,
				Tag:         "containment/demo:latest",
				Fingerprint: "0123456789abcdef",
				LastBuild:   &domain.BuildRecord{Fingerprint: "fedcba9876543210"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			out, err := execute(t, &mockApp{status: tt.status}, "status")
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestCommands_StatusError(t *testing.T) {
	m := &mockApp{err: errors.New("boom")}
	out, err := execute(t, m, "status")
	require.Error(t, err)
	assert.Empty(t, out)
}
