package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/psyberchi/jvocab/pkg/config"
	"github.com/psyberchi/jvocab/pkg/document"
	verrors "github.com/psyberchi/jvocab/pkg/errors"
	pkgio "github.com/psyberchi/jvocab/pkg/io"
)

// initCommand creates a new, empty vocabulary file.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init <file>",
		Short:   "Create an empty vocabulary file",
		GroupID: groupFiles,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := verrors.ValidatePath(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return verrors.New(verrors.ErrCodeInvalidInput, "%s already exists; use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return verrors.Wrap(verrors.ErrCodeRead, err, "stat %s", path)
			}

			cfg, cfgPath, err := c.loadConfig()
			if err != nil {
				return err
			}
			doc := document.New(c.codecOptions(cfg)...)
			if err := doc.SaveAs(path); err != nil {
				return err
			}
			c.rememberFile(cfg, cfgPath, path)

			printSuccess("Created vocabulary file")
			printFile(path)
			printNextStep("Add a category", appName+" add-category <name>")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// fmtCommand reads a file and writes it back in canonical form.
func (c *CLI) fmtCommand() *cobra.Command {
	var (
		output  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:     "fmt [file]",
		Short:   "Rewrite a vocabulary file in canonical form",
		Long:    "Read a vocabulary file and write it back with sorted categories and entries. Entries that cannot be read are dropped and reported.",
		GroupID: groupFiles,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgPath, err := c.loadConfig()
			if err != nil {
				return err
			}
			path, err := c.fileArg(cfg, args)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			opts := c.codecOptions(cfg)
			if compact {
				opts = append(opts, pkgio.WithCompact())
			}
			skipped := 0
			s, err := pkgio.LoadFile(path, append(opts, pkgio.WithWarningHandler(func(pkgio.Warning) { skipped++ }))...)
			if err != nil {
				return err
			}

			dest := output
			switch dest {
			case "-":
				return pkgio.WriteJSON(s, cmd.OutOrStdout(), opts...)
			case "":
				dest = path
			}
			if err := pkgio.SaveFile(dest, s, opts...); err != nil {
				return err
			}
			c.rememberFile(cfg, cfgPath, dest)

			prog.done("formatted", dest, s)
			printSuccess("Formatted vocabulary file")
			if skipped > 0 {
				printWarning("Dropped %s", plural(skipped, "unreadable element", "unreadable elements"))
			}
			printFile(dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead (- for stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "write without indentation")
	return cmd
}

// checkCommand reports elements that would be dropped when reading a file.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check [file]",
		Short:   "Report problems in a vocabulary file",
		GroupID: groupFiles,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig()
			if err != nil {
				return err
			}
			path, err := c.fileArg(cfg, args)
			if err != nil {
				return err
			}

			var warnings []pkgio.Warning
			s, err := pkgio.LoadFile(path, pkgio.WithWarningHandler(func(w pkgio.Warning) {
				warnings = append(warnings, w)
			}))
			if err != nil {
				return err
			}

			if len(warnings) == 0 {
				printSuccess("%s is clean", path)
				printCounts(s.CategoryCount(), s.VocabCount())
				return nil
			}
			for _, w := range warnings {
				printWarning("%s", w.String())
				printDetail("%s", w.Kind)
			}
			return verrors.New(verrors.ErrCodeParse, "%s: %s", path, plural(len(warnings), "problem", "problems"))
		},
	}
}

// fileArg picks the positional file argument, falling back to --file and
// the recent list.
func (c *CLI) fileArg(cfg *config.Config, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return c.resolveFile(cfg)
}
