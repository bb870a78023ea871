//go:build e2e

package e2e_test

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var containmentBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "containment-e2e-*")
	if err != nil {
		panic(err)
	}

	containmentBinary = filepath.Join(tmpDir, "containment")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", containmentBinary, "./cmd/containment")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build containment binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:       "testdata",
		Setup:     setupE2E,
		Condition: condition,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("USER", "ada")
	env.Setenv("SHELL", "/bin/sh")
	// Point the engine client at a socket nobody listens on.
	env.Setenv("DOCKER_HOST", "unix://"+filepath.Join(env.WorkDir, "no-engine.sock"))

	binDir := filepath.Dir(containmentBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// condition answers [dockergroup], which holds when the host group
// database has a docker group.
func condition(cond string) (bool, error) {
	switch cond {
	case "dockergroup":
		_, err := user.LookupGroup("docker")
		return err == nil, nil
	default:
		return false, fmt.Errorf("unknown condition %q", cond)
	}
}
