package docker_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	tarfs "github.com/nlepage/go-tarfs"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zancas/containment/internal/adapters/docker"
	"github.com/zancas/containment/internal/core/domain"
)

type fakeAPI struct {
	stream     string
	buildErr   error
	inspectErr error

	context []byte
	options build.ImageBuildOptions
	tags    []string
}

func (f *fakeAPI) ImageBuild(_ context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error) {
	if f.buildErr != nil {
		return build.ImageBuildResponse{}, f.buildErr
	}
	data, err := io.ReadAll(buildContext)
	if err != nil {
		return build.ImageBuildResponse{}, err
	}
	f.context = data
	f.options = options
	return build.ImageBuildResponse{Body: io.NopCloser(strings.NewReader(f.stream))}, nil
}

func (f *fakeAPI) ImageInspect(_ context.Context, imageID string, _ ...client.ImageInspectOption) (image.InspectResponse, error) {
	f.tags = append(f.tags, imageID)
	return image.InspectResponse{ID: "sha256:abc"}, f.inspectErr
}

type notFoundError struct{}

func (notFoundError) Error() string { return "No such image" }
func (notFoundError) NotFound()     {}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newBuilder(api *fakeAPI) *docker.Builder {
	return docker.NewBuilderWithAPI(func() (docker.API, error) { return api, nil }, func() time.Time { return fixedNow })
}

// newProject lays out a project scope with the files a build reads.
func newProject(t *testing.T) *domain.Settings {
	t.Helper()
	s := &domain.Settings{
		CommunityRoot: "/work/acme",
		ProjectName:   "acme",
		Home:          t.TempDir(),
		User:          "ada",
		Shell:         "/bin/bash",
		UID:           1000,
		DockerGID:     998,
	}
	require.NoError(t, os.MkdirAll(s.ProjectDir(), domain.DirPerm))
	for name, content := range map[string]string{
		domain.DockerfileName:     "FROM ubuntu\n",
		domain.EntrypointName:     domain.EntrypointScript(s),
		domain.RunScriptName:      domain.RunScript(s),
		domain.LockFileName:       "",
		domain.BuildRecordName:    "{}",
		domain.OSPackagesFileName: "[]",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(s.ProjectDir(), name), []byte(content), domain.FilePerm))
	}
	return s
}

func TestBuilder_Build(t *testing.T) {
	s := newProject(t)
	api := &fakeAPI{stream: `{"stream":"Step 1/6 : FROM ubuntu\n"}` + "\n" +
		`{"aux":{"ID":"sha256:abc"}}` + "\n" +
		`{"stream":"Successfully tagged containment/acme:latest\n"}` + "\n"}

	var out bytes.Buffer
	err := newBuilder(api).Build(t.Context(), s, domain.DefaultImage(), &out)
	require.NoError(t, err)

	assert.Equal(t, "Step 1/6 : FROM ubuntu\nSuccessfully tagged containment/acme:latest\n", out.String())

	assert.Equal(t, []string{"containment/acme:latest"}, api.options.Tags)
	assert.Equal(t, domain.DockerfileName, api.options.Dockerfile)
	assert.True(t, api.options.Remove)
	assert.Equal(t, map[string]string{
		ocispec.AnnotationTitle:           "containment/acme",
		ocispec.AnnotationCreated:         "2026-03-01T12:00:00Z",
		ocispec.AnnotationBaseImageName:   "docker.io/library/ubuntu",
		ocispec.AnnotationBaseImageDigest: "sha256:c8c275751219dadad8fa56b3ac41ca6cb22219ff117ca98fe82b42f24e1ba64e",
	}, api.options.Labels)
}

func TestBuilder_Build_Context(t *testing.T) {
	s := newProject(t)
	api := &fakeAPI{}

	require.NoError(t, newBuilder(api).Build(t.Context(), s, domain.DefaultImage(), io.Discard))

	tfs, err := tarfs.New(bytes.NewReader(api.context))
	require.NoError(t, err)

	dockerfile, err := fs.ReadFile(tfs, domain.DockerfileName)
	require.NoError(t, err)
	assert.Equal(t, "FROM ubuntu\n", string(dockerfile))

	entrypoint, err := fs.ReadFile(tfs, domain.EntrypointName)
	require.NoError(t, err)
	assert.Equal(t, domain.EntrypointScript(s), string(entrypoint))

	for _, excluded := range []string{domain.LockFileName, domain.BuildRecordName} {
		_, err := fs.Stat(tfs, excluded)
		assert.ErrorIs(t, err, fs.ErrNotExist, excluded)
	}
}

func TestBuilder_Build_UnpinnedImage(t *testing.T) {
	s := newProject(t)
	api := &fakeAPI{}

	img := domain.BaseImage{Reference: "debian:bookworm", Packager: domain.PackagerDebian}
	require.NoError(t, newBuilder(api).Build(t.Context(), s, img, io.Discard))

	assert.Equal(t, "docker.io/library/debian", api.options.Labels[ocispec.AnnotationBaseImageName])
	assert.NotContains(t, api.options.Labels, ocispec.AnnotationBaseImageDigest)
}

func TestBuilder_Build_Errors(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeAPI
		wantErr error
		wantMsg string
	}{
		{
			name:    "request rejected",
			api:     &fakeAPI{buildErr: errors.New("Cannot connect to the Docker daemon")},
			wantErr: domain.ErrImageBuildFailed,
			wantMsg: "Cannot connect",
		},
		{
			name:    "error in stream",
			api:     &fakeAPI{stream: `{"errorDetail":{"message":"returned a non-zero code: 100"}}` + "\n"},
			wantErr: domain.ErrImageBuildFailed,
			wantMsg: "non-zero code: 100",
		},
		{
			name:    "malformed stream",
			api:     &fakeAPI{stream: "{"},
			wantErr: domain.ErrImageBuildFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProject(t)
			err := newBuilder(tt.api).Build(t.Context(), s, domain.DefaultImage(), io.Discard)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 5, domain.ExitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBuilder_Build_InvalidImage(t *testing.T) {
	s := newProject(t)
	err := newBuilder(&fakeAPI{}).Build(t.Context(), s, domain.BaseImage{Reference: "Not Valid"}, io.Discard)
	require.ErrorIs(t, err, domain.ErrInvalidImageReference)
}

func TestBuilder_Build_MissingProject(t *testing.T) {
	s := newProject(t)
	s.ProjectName = "other"

	err := newBuilder(&fakeAPI{}).Build(t.Context(), s, domain.DefaultImage(), io.Discard)
	require.ErrorIs(t, err, domain.ErrScopeReadFailed)
}

func TestBuilder_EngineUnavailable(t *testing.T) {
	calls := 0
	b := docker.NewBuilderWithAPI(func() (docker.API, error) {
		calls++
		return nil, errors.New("unable to parse docker host")
	}, time.Now)

	_, err := b.ImageExists(t.Context(), "containment/acme:latest")
	require.ErrorIs(t, err, domain.ErrEngineUnavailable)

	err = b.Build(t.Context(), newProject(t), domain.DefaultImage(), io.Discard)
	require.ErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.Equal(t, 1, calls, "connection is attempted once")
}

func TestBuilder_ImageExists(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    bool
		wantErr error
	}{
		{name: "present", want: true},
		{name: "not found", err: notFoundError{}, want: false},
		{name: "engine error", err: errors.New("connection refused"), wantErr: domain.ErrEngineUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{inspectErr: tt.err}
			got, err := newBuilder(api).ImageExists(t.Context(), "containment/acme:latest")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"containment/acme:latest"}, api.tags)
		})
	}
}
