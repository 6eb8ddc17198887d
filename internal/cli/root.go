package cli

import (
	"github.com/spf13/cobra"

	"github.com/psyberchi/jvocab/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Every command that touches a vocabulary file reads --file, falling back to
// the most recently used file from the preferences. The logger is attached
// to the command context before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "jvocab manages Japanese vocabulary lists",
		Long:          `jvocab keeps Japanese vocabulary in categorized JSON files. Each entry stores the English meaning, romaji, kana, kanji and the lesson it belongs to.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.filePath, "file", "f", "", "vocabulary file (default: most recently used)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "preferences file (default: $XDG_CONFIG_HOME/jvocab/config.toml)")

	root.AddGroup(
		&cobra.Group{ID: groupBrowse, Title: "Browsing:"},
		&cobra.Group{ID: groupEdit, Title: "Editing:"},
		&cobra.Group{ID: groupFiles, Title: "Files:"},
	)

	// Browsing
	root.AddCommand(c.categoriesCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.lessonsCommand())
	root.AddCommand(c.lessonCommand())
	root.AddCommand(c.statsCommand())

	// Editing
	root.AddCommand(c.addCategoryCommand())
	root.AddCommand(c.renameCategoryCommand())
	root.AddCommand(c.removeCategoryCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.moveCommand())

	// Files
	root.AddCommand(c.initCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.recentCommand())
	root.AddCommand(c.configCommand())

	root.AddCommand(c.completionCommand())

	return root
}

const (
	groupBrowse = "browse"
	groupEdit   = "edit"
	groupFiles  = "files"
)
