package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	gflowerrors "gflow.dev/gflow/internal/errors"
)

// VersionFileName is the version marker looked up in the working directory
const VersionFileName = "VERSION"

// LoadVersion reads the version marker at path, falling back to cfg.InitVersion when it is missing.
// The version is informational; nothing in the workflow depends on it.
func LoadVersion(path string, cfg Config) (*semver.Version, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ResolveVersion(nil, cfg)
		}
		return nil, gflowerrors.NewVersionError(path, err)
	}
	defer f.Close()

	return ResolveVersion(f, cfg)
}

// ResolveVersion parses the version read from r. A nil reader means there is no version marker.
func ResolveVersion(r io.Reader, cfg Config) (*semver.Version, error) {
	raw := cfg.InitVersion
	if r != nil {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, gflowerrors.NewVersionError(VersionFileName, err)
		}
		raw = string(data)
	}

	value := strings.TrimSpace(raw)
	v, err := semver.NewVersion(value)
	if err != nil {
		return nil, gflowerrors.NewVersionError(value, err)
	}
	return v, nil
}
