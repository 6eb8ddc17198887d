// Package cli implements the jvocab command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/psyberchi/jvocab/pkg/config"
	"github.com/psyberchi/jvocab/pkg/document"
	verrors "github.com/psyberchi/jvocab/pkg/errors"
	vocabio "github.com/psyberchi/jvocab/pkg/io"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "jvocab"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// filePath is the --file flag; empty means the most recent file.
	filePath string
	// configPath is the --config flag; empty means config.DefaultPath.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the preferences file named by --config or the default
// location.
func (c *CLI) loadConfig() (*config.Config, string, error) {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// rememberFile records path in the recent list. Failures are only logged;
// they never fail the command.
func (c *CLI) rememberFile(cfg *config.Config, cfgPath, path string) {
	if !cfg.AddRecentFile(path) {
		return
	}
	if err := cfg.Save(cfgPath); err != nil {
		c.Logger.Debug("could not update recent files", "error", err)
	}
}

// codecOptions combines the output preferences with the CLI logger.
func (c *CLI) codecOptions(cfg *config.Config) []vocabio.Option {
	return append(cfg.CodecOptions(), vocabio.WithLogger(c.Logger))
}

// =============================================================================
// Document Access
// =============================================================================

// resolveFile returns the vocabulary file to operate on.
func (c *CLI) resolveFile(cfg *config.Config) (string, error) {
	if c.filePath != "" {
		return c.filePath, nil
	}
	if path, ok := cfg.MostRecent(); ok {
		return path, nil
	}
	return "", verrors.New(verrors.ErrCodeInvalidInput, "no vocabulary file given; pass --file or run '%s init <file>'", appName)
}

// openDocument opens the selected file and records it as recently used.
func (c *CLI) openDocument() (*document.Document, error) {
	cfg, cfgPath, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	path, err := c.resolveFile(cfg)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("opening vocabulary", "path", path)
	doc, err := document.Open(path, c.codecOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	c.rememberFile(cfg, cfgPath, path)
	return doc, nil
}

// readStore opens the selected file for a read-only command.
func (c *CLI) readStore() (*vocab.Store, error) {
	doc, err := c.openDocument()
	if err != nil {
		return nil, err
	}
	s := doc.Store()
	doc.Close()
	return s, nil
}

// edit applies fn to the selected file and saves it when fn succeeds.
func (c *CLI) edit(fn func(*vocab.Store) error) error {
	doc, err := c.openDocument()
	if err != nil {
		return err
	}

	var fnErr error
	doc.Apply(func(s *vocab.Store) bool {
		fnErr = fn(s)
		return fnErr == nil
	})
	if fnErr != nil {
		doc.Discard()
		doc.Close()
		return fnErr
	}

	if err := doc.Save(); err != nil {
		doc.Discard()
		doc.Close()
		return err
	}
	c.Logger.Debug("saved vocabulary", "path", doc.Path())
	return doc.Close()
}

// peekStore loads the selected file without recording it as recently used
// and without logging, so shell completion never writes to disk or stderr.
func (c *CLI) peekStore() (*vocab.Store, error) {
	cfg, _, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	path, err := c.resolveFile(cfg)
	if err != nil {
		return nil, err
	}
	return vocabio.LoadFile(path, cfg.CodecOptions()...)
}

// completeCategories offers category names from the selected file.
func (c *CLI) completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := c.peekStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return s.Categories(), cobra.ShellCompDirectiveNoFileComp
}
