package linkcheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/markdown"
)

// externalSchemes are link prefixes that denote targets outside the local
// filesystem; these are never checked for existence.
var externalSchemes = []string{"http://", "https://", "mailto:"}

// Config controls a validation pass.
type Config struct {
	// IgnoreDirs lists directory names skipped during discovery
	// (e.g. "node_modules"). Matching is by base name at any depth.
	IgnoreDirs []string
}

// Validator checks that local markdown links resolve to existing files.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator with the given configuration.
func NewValidator(cfg *Config) *Validator {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Validator{cfg: cfg}
}

// CheckPath validates all markdown files under root (a directory) or the
// single file root. Missing link targets are accumulated; filesystem access
// failures abort the pass.
func (v *Validator) CheckPath(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	result := &Result{Missing: []Missing{}}

	if !info.IsDir() {
		if !isMarkdownFile(root) {
			return result, nil
		}
		result.FilesScanned = 1
		return result, v.checkFile(root, result)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if v.isIgnoredDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !isMarkdownFile(path) {
			return nil
		}

		result.FilesScanned++
		return v.checkFile(path, result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// checkFile reads one document and appends a Missing entry for every local
// link whose resolved target does not exist.
func (v *Validator) checkFile(path string, result *Result) error {
	// #nosec G304 -- path comes from directory discovery, not user input
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for _, link := range markdown.ExtractLinks(content) {
		localPath, local := classifyTarget(link.Destination)
		if !local {
			continue
		}
		if !targetExists(dir, localPath) {
			result.Missing = append(result.Missing, Missing{File: path, Target: link.Destination})
		}
	}
	return nil
}

// classifyTarget decides whether a link destination refers to a local
// filesystem path. It returns the path portion (text before any #fragment,
// whitespace-trimmed) and true for local targets; external schemes, bare
// fragments, data URIs, and empty paths return false.
func classifyTarget(target string) (string, bool) {
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(target, scheme) {
			return "", false
		}
	}
	if strings.HasPrefix(target, "#") {
		return "", false
	}

	path, _, _ := strings.Cut(target, "#")
	path = strings.TrimSpace(path)
	if path == "" {
		return "", false
	}
	if strings.HasPrefix(path, "data:") {
		return "", false
	}
	return path, true
}

// targetExists reports whether path, resolved relative to dir, names an
// existing file or directory. Stat follows symlinks, so a dangling symlink
// counts as missing.
func targetExists(dir, path string) bool {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(dir, path)
	}
	_, err := os.Stat(resolved)
	return err == nil
}

func isMarkdownFile(path string) bool {
	return filepath.Ext(path) == ".md"
}

func (v *Validator) isIgnoredDir(name string) bool {
	for _, ignored := range v.cfg.IgnoreDirs {
		if name == ignored {
			return true
		}
	}
	return false
}
