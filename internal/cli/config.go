package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
)

// configCommand creates the preferences management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage preferences",
		GroupID: groupFiles,
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := c.loadConfig()
			if err != nil {
				return err
			}
			printKeyValue("File", path)
			printKeyValue("Compact", strconv.FormatBool(cfg.Output.Compact))
			printKeyValue("Omit zero", strconv.FormatBool(cfg.Output.OmitZeroLesson))
			printKeyValue("Recent max", strconv.Itoa(cfg.Recent.Max))
			for _, f := range cfg.RecentFiles() {
				printFile(f)
			}
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a preferences file with the default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := c.loadConfig()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				printInfo("Preferences already exist")
				printDetail("File: %s", path)
				return nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return verrors.Wrap(verrors.ErrCodeRead, err, "stat %s", path)
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			printSuccess("Wrote default preferences")
			printFile(path)
			return nil
		},
	}
}
