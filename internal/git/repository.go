package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	gflowerrors "gflow.dev/gflow/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// CheckEnvironment verifies that git is installed and that dir is the root of a repository.
// It runs before anything else touches the working copy.
func CheckEnvironment(dir string) (*Repository, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, gflowerrors.NewStartupError("git command was not found", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return nil, gflowerrors.NewStartupError("This folder doesn't seem to be the root of a git project.", nil)
	}

	repo, err := OpenRepository(dir)
	if err != nil {
		return nil, gflowerrors.NewStartupError("This folder doesn't seem to be the root of a git project.", err)
	}
	return repo, nil
}

// OpenRepository opens the git repository rooted at path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpen(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// GetRepoRoot returns the root directory of the repository
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// GetCurrentBranch returns the current branch name
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// GetRemoteURL returns the first URL configured for a remote
func (r *Repository) GetRemoteURL(name string) (string, error) {
	remote, err := r.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}
