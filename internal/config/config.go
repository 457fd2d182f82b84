package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	gflowerrors "gflow.dev/gflow/internal/errors"
)

// FileName is the configuration file looked up in the working directory
const FileName = ".g_flowrc"

// Recognized configuration keys
const (
	KeyInitVersion = "INIT_VERSION"
	KeyEpic        = "EPIC"
	KeyFeature     = "FEATURE"
	KeyFix         = "FIX"
	KeyHotfix      = "HOTFIX"
	KeyProdBranch  = "PROD_BRANCH"
	KeyHmgBranch   = "HMG_BRANCH"
	KeyDevBranch   = "DEV_BRANCH"
	KeyRemote      = "REMOTE"
)

// Keys lists every recognized key in the order they are written by Encode
var Keys = []string{
	KeyInitVersion,
	KeyEpic,
	KeyFeature,
	KeyFix,
	KeyHotfix,
	KeyProdBranch,
	KeyHmgBranch,
	KeyDevBranch,
	KeyRemote,
}

// Config holds the resolved gflow configuration. Every field is non-empty.
type Config struct {
	InitVersion string
	Epic        string
	Feature     string
	Fix         string
	Hotfix      string
	ProdBranch  string
	HmgBranch   string
	DevBranch   string
	Remote      string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		InitVersion: "0.1.0",
		Epic:        "epic",
		Feature:     "feat",
		Fix:         "fix",
		Hotfix:      "hfix",
		ProdBranch:  "main",
		HmgBranch:   "homolog",
		DevBranch:   "dev",
		Remote:      "origin",
	}
}

// field returns a pointer to the field backing key, or nil for unknown keys
func (c *Config) field(key string) *string {
	switch key {
	case KeyInitVersion:
		return &c.InitVersion
	case KeyEpic:
		return &c.Epic
	case KeyFeature:
		return &c.Feature
	case KeyFix:
		return &c.Fix
	case KeyHotfix:
		return &c.Hotfix
	case KeyProdBranch:
		return &c.ProdBranch
	case KeyHmgBranch:
		return &c.HmgBranch
	case KeyDevBranch:
		return &c.DevBranch
	case KeyRemote:
		return &c.Remote
	}
	return nil
}

// Get returns the value for key and whether the key is recognized
func (c Config) Get(key string) (string, bool) {
	p := c.field(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Load reads the configuration file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, gflowerrors.NewConfigError(path, "", err)
	}
	defer f.Close()

	return resolve(f, path)
}

// Resolve applies the KEY=VALUE lines read from r on top of the defaults.
// A nil reader means there is no configuration source.
func Resolve(r io.Reader) (Config, error) {
	return resolve(r, FileName)
}

func resolve(r io.Reader, source string) (Config, error) {
	cfg := Default()
	if r == nil {
		return cfg, nil
	}

	overridden := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), "\n\r ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		p := cfg.field(key)
		if p == nil {
			// Unknown keys are left for newer versions.
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return Config{}, gflowerrors.NewConfigError(source, key, nil)
		}
		*p = value
		overridden[key] = true
	}
	if err := scanner.Err(); err != nil {
		return Config{}, gflowerrors.NewConfigError(source, "", err)
	}

	if err := cfg.validate(source, overridden); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every key has a value and that category labels are distinct
func (c Config) Validate() error {
	return c.validate(FileName, nil)
}

// validate blames the overridden key when a label clash involves a default
func (c Config) validate(source string, overridden map[string]bool) error {
	for _, key := range Keys {
		if v, _ := c.Get(key); v == "" {
			return gflowerrors.NewConfigError(source, key, nil)
		}
	}

	seen := make(map[string]Category, len(Categories))
	for _, cat := range Categories {
		label := c.Label(cat)
		other, ok := seen[label]
		if !ok {
			seen[label] = cat
			continue
		}
		culprit, kept := cat, other
		if overridden[other.Key()] && !overridden[cat.Key()] {
			culprit, kept = other, cat
		}
		return gflowerrors.NewConfigError(source, culprit.Key(),
			fmt.Errorf("label %q is already used by %s", label, kept.Key()))
	}
	return nil
}

// Encode writes the configuration as KEY=VALUE lines
func (c Config) Encode(w io.Writer) error {
	for _, key := range Keys {
		v, _ := c.Get(key)
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, v); err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}
	}
	return nil
}
