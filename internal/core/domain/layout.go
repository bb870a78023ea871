package domain

const (
	// ScopeDirName is the name of the community and profile scope directories.
	ScopeDirName = ".containment"

	// ProjectsDirName is the profile subdirectory holding project scopes.
	ProjectsDirName = "projects"

	// BaseFileName is the community Dockerfile fragment.
	BaseFileName = "base"

	// ImageSettingsFileName declares the community base image and its packager.
	ImageSettingsFileName = "containment.yaml"

	// OSPackagesFileName is the per-scope OS package list.
	OSPackagesFileName = "os_packages.json"

	// LangPackagesFileName is the per-scope language package map.
	LangPackagesFileName = "lang_packages.json"

	// DockerfileName is the generated Dockerfile in the project scope.
	DockerfileName = "Dockerfile"

	// RunScriptName is the generated container launch script.
	RunScriptName = "run_containment.sh"

	// EntrypointName is the generated container entrypoint script.
	EntrypointName = "entrypoint.sh"

	// BuildRecordName is the record of the last successful build.
	BuildRecordName = "build.json"

	// LockFileName is the advisory lock guarding a project scope.
	LockFileName = ".lock"

	// TagPrefix is the repository prefix of every project image.
	TagPrefix = "containment/"

	// DirPerm is the default permission for scope directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for scope files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission of generated scripts (rwxr-xr-x).
	ExecPerm = 0o755
)
