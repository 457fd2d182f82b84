package testhelpers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GflowBinary returns the path of a gflow binary built from ./cmd/gflow.
// The binary is built once per test process and the test is skipped if the build fails.
func GflowBinary(t *testing.T) string {
	t.Helper()

	binaryOnce.Do(func() {
		sharedBinaryPath, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		t.Skipf("gflow binary unavailable: %v", binaryErr)
	}
	return sharedBinaryPath
}

// BinaryResult holds the outcome of a gflow process run.
type BinaryResult struct {
	Output   string
	ExitCode int
}

// RunBinary runs the gflow binary in dir, feeding stdin and returning combined output and exit status.
func RunBinary(t *testing.T, dir, stdin string, args ...string) BinaryResult {
	t.Helper()

	cmd := exec.Command(GflowBinary(t), args...)
	cmd.Dir = dir
	cmd.Stdin = bytes.NewBufferString(stdin)
	cmd.Env = append(os.Environ(),
		"GFLOW_NON_INTERACTIVE=1",
		"GFLOW_LOG_FILE="+filepath.Join(t.TempDir(), "gflow.log"),
		"NO_COLOR=1",
	)

	out, err := cmd.CombinedOutput()
	result := BinaryResult{Output: string(out)}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run gflow: %v", err)
	}
	return result
}

// buildBinary builds the gflow binary into a temp directory and returns its path.
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gflow-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "gflow")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gflow")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir to the directory containing go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
