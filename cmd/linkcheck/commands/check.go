package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/linkcheck/internal/config"
	"git.home.luguber.info/inful/linkcheck/internal/linkcheck"
)

// CheckCmd implements the 'check' command: one validation pass over a tree.
type CheckCmd struct {
	Root   string `arg:"" optional:"" default:"." help:"Root directory (or single markdown file) to scan"`
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

// Run executes the check command.
func (cc *CheckCmd) Run(_ *Global, root *CLI) error {
	// Validate path exists before running so the error names the path.
	if _, err := os.Stat(cc.Root); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", cc.Root)
	}

	result, err := runCheck(root.Config, cc.Root)
	if err != nil {
		return err
	}

	formatter := linkcheck.NewFormatter(cc.Format)
	if err := formatter.Format(os.Stdout, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !result.OK() {
		os.Exit(1)
	}
	return nil
}

// runCheck loads configuration and performs a single validation pass.
func runCheck(configPath, rootDir string) (*linkcheck.Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	validator := linkcheck.NewValidator(&linkcheck.Config{IgnoreDirs: cfg.Ignore})
	result, err := validator.CheckPath(rootDir)
	if err != nil {
		return nil, fmt.Errorf("link validation failed: %w", err)
	}

	slog.Debug("scan complete", "root", rootDir, "files", result.FilesScanned, "missing", result.MissingCount())
	return result, nil
}
