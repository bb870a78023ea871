package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

// Kind classifies a failure so the CLI can map it to an exit code.
type Kind int

const (
	// KindUnknown is any failure that is not anchored to a sentinel.
	KindUnknown Kind = iota
	// KindFilesystem covers missing, unreadable or unwritable paths.
	KindFilesystem
	// KindConfig covers malformed configuration files and environment.
	KindConfig
	// KindBuild covers container engine failures during image build.
	KindBuild
	// KindConflict covers already-paved scopes and locked projects.
	KindConflict
	// KindContainer covers a container that exited with a non-zero status.
	KindContainer
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFilesystem:
		return "filesystem"
	case KindConfig:
		return "config"
	case KindBuild:
		return "build"
	case KindConflict:
		return "conflict"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

var (
	// ErrScopeCreateFailed is returned when a scope directory or one of its default files cannot be created.
	ErrScopeCreateFailed = zerr.New("failed to create scope")

	// ErrScopeReadFailed is returned when a scope file cannot be read.
	ErrScopeReadFailed = zerr.New("failed to read scope file")

	// ErrDockerfileWriteFailed is returned when the Dockerfile cannot be written.
	ErrDockerfileWriteFailed = zerr.New("failed to write Dockerfile")

	// ErrRunScriptFailed is returned when the run script cannot be made executable or started.
	ErrRunScriptFailed = zerr.New("failed to start run script")

	// ErrBuildRecordFailed is returned when the build record cannot be read or written.
	ErrBuildRecordFailed = zerr.New("failed to access build record")

	// ErrPackageFileInvalid is returned when a package file is not well-formed for its expected shape.
	ErrPackageFileInvalid = zerr.New("malformed package file")

	// ErrImageSettingsInvalid is returned when containment.yaml or the base fragment cannot be parsed.
	ErrImageSettingsInvalid = zerr.New("invalid base image settings")

	// ErrInvalidImageReference is returned when the base image is not a valid image reference.
	ErrInvalidImageReference = zerr.New("invalid base image reference")

	// ErrUnknownPackager is returned when OS packages are requested but no packager is known for the base image.
	ErrUnknownPackager = zerr.New("no OS packager declared for base image")

	// ErrMissingEnvironment is returned when a required environment variable is unset.
	ErrMissingEnvironment = zerr.New("required environment variable is not set")

	// ErrDockerGroupNotFound is returned when the host has no docker group.
	ErrDockerGroupNotFound = zerr.New("docker group not found on host")

	// ErrInvalidProjectDir is returned when the working directory has no usable base name.
	ErrInvalidProjectDir = zerr.New("cannot derive a project name from the working directory")

	// ErrScopeMissing is returned when an operation needs a scope that has not been paved.
	ErrScopeMissing = zerr.New("scope has not been paved")

	// ErrEngineUnavailable is returned when the container engine client cannot be created.
	ErrEngineUnavailable = zerr.New("container engine unavailable")

	// ErrImageBuildFailed is returned when the image build request or its progress stream fails.
	ErrImageBuildFailed = zerr.New("image build failed")

	// ErrScopeExists is returned when paving a scope that is already present.
	ErrScopeExists = zerr.New("scope already exists")

	// ErrProjectLocked is returned when another invocation holds the project lock.
	ErrProjectLocked = zerr.New("project is locked by another invocation")

	// ErrWatchFailed is returned when the scope watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch scopes")
)

var sentinelKinds = []struct {
	err  error
	kind Kind
}{
	{ErrScopeCreateFailed, KindFilesystem},
	{ErrScopeReadFailed, KindFilesystem},
	{ErrDockerfileWriteFailed, KindFilesystem},
	{ErrRunScriptFailed, KindFilesystem},
	{ErrBuildRecordFailed, KindFilesystem},
	{ErrWatchFailed, KindFilesystem},
	{ErrPackageFileInvalid, KindConfig},
	{ErrImageSettingsInvalid, KindConfig},
	{ErrInvalidImageReference, KindConfig},
	{ErrUnknownPackager, KindConfig},
	{ErrMissingEnvironment, KindConfig},
	{ErrDockerGroupNotFound, KindConfig},
	{ErrInvalidProjectDir, KindConfig},
	{ErrScopeMissing, KindConfig},
	{ErrEngineUnavailable, KindBuild},
	{ErrImageBuildFailed, KindBuild},
	{ErrScopeExists, KindConflict},
	{ErrProjectLocked, KindConflict},
}

// Failure anchors a cause to a sentinel error so that errors.Is matches both.
type Failure struct {
	sentinel error
	cause    error
}

// Fail returns cause anchored to sentinel. If cause is nil the sentinel is returned.
func Fail(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &Failure{sentinel: sentinel, cause: cause}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.sentinel.Error() + ": " + f.cause.Error()
}

// Message returns the sentinel message without the cause chain.
func (f *Failure) Message() string {
	return f.sentinel.Error()
}

// Unwrap returns the cause so chain walkers continue past the sentinel.
func (f *Failure) Unwrap() error {
	return f.cause
}

// Is reports whether target is the anchoring sentinel.
func (f *Failure) Is(target error) bool {
	return f.sentinel == target //nolint:errorlint // identity comparison with sentinel
}

// ContainerExitError reports a container session that ended with a non-zero status.
type ContainerExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ContainerExitError) Error() string {
	return fmt.Sprintf("container exited with status %d", e.Code)
}

// KindOf classifies err by the sentinel it is anchored to.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var exitErr *ContainerExitError
	if errors.As(err, &exitErr) {
		return KindContainer
	}
	for _, s := range sentinelKinds {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	return KindUnknown
}

// ExitCode maps err to the process exit status.
// A container exit propagates the container's own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ContainerExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch KindOf(err) {
	case KindFilesystem:
		return 3
	case KindConfig:
		return 4
	case KindBuild:
		return 5
	case KindConflict:
		return 6
	default:
		return 1
	}
}
