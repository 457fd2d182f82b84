package testhelpers

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene is a working copy cloned from a bare remote, with main pushed and tracking origin/main.
type Scene struct {
	Dir       string
	RemoteDir string
	Repo      *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// RequireGit skips the test when git is not installed.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// NewScene creates a new test scene. Directories are removed by t.TempDir cleanup.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	RequireGit(t)

	root := t.TempDir()
	remoteDir := filepath.Join(root, "remote.git")
	workDir := filepath.Join(root, "work")

	if err := NewBareRepo(remoteDir); err != nil {
		t.Fatalf("Failed to create remote: %v", err)
	}

	repo, err := NewGitRepo(workDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}
	if err := repo.CreateChangeAndCommit("initial commit", ""); err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}
	if err := repo.RunGitCommand("remote", "add", "origin", remoteDir); err != nil {
		t.Fatalf("Failed to add remote: %v", err)
	}
	if err := repo.RunGitCommand("push", "-u", "origin", "main"); err != nil {
		t.Fatalf("Failed to push main: %v", err)
	}

	scene := &Scene{
		Dir:       workDir,
		RemoteDir: remoteDir,
		Repo:      repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// DevBranchSetup adds a dev branch pushed to the remote with upstream tracking.
func DevBranchSetup(scene *Scene) error {
	if err := scene.Repo.RunGitCommand("switch", "--create", "dev"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("dev work", "dev"); err != nil {
		return err
	}
	if err := scene.Repo.RunGitCommand("push", "-u", "origin", "dev"); err != nil {
		return err
	}
	return scene.Repo.RunGitCommand("switch", "main")
}
