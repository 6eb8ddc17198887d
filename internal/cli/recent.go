package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// recentCommand lists, picks, or clears the recently used files.
func (c *CLI) recentCommand() *cobra.Command {
	var (
		pick     bool
		clearAll bool
		forget   string
	)

	cmd := &cobra.Command{
		Use:     "recent",
		Short:   "Show recently used vocabulary files",
		Long:    "Show recently used vocabulary files, newest first. The newest file is used when --file is not given.",
		GroupID: groupFiles,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgPath, err := c.loadConfig()
			if err != nil {
				return err
			}

			switch {
			case clearAll:
				cfg.Recent.Files = nil
				if err := cfg.Save(cfgPath); err != nil {
					return err
				}
				printSuccess("Cleared recent files")
				return nil

			case forget != "":
				if !cfg.RemoveRecentFile(forget) {
					printInfo("%s is not in the recent list", forget)
					return nil
				}
				if err := cfg.Save(cfgPath); err != nil {
					return err
				}
				printSuccess("Forgot %s", forget)
				return nil
			}

			files := statRecentFiles(cfg.RecentFiles())
			if len(files) == 0 {
				printInfo("No recent files")
				printNextStep("Create one with", appName+" init <file>")
				return nil
			}

			if !pick {
				for i, f := range files {
					line := StyleNumber.Render(strconv.Itoa(i+1)) + " " + StyleValue.Render(f.Path)
					if !f.Exists {
						line += " " + StyleWarning.Render("(missing)")
					}
					fmt.Println(line)
				}
				return nil
			}

			p := tea.NewProgram(NewRecentListModel(files), tea.WithOutput(cmd.ErrOrStderr()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}
			fm, ok := finalModel.(RecentListModel)
			if !ok || fm.Selected == "" {
				printDetail("No selection made")
				return nil
			}
			c.rememberFile(cfg, cfgPath, fm.Selected)
			fmt.Fprintln(cmd.OutOrStdout(), fm.Selected)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "choose a file interactively and make it the current one")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "forget all recent files")
	cmd.Flags().StringVar(&forget, "forget", "", "remove one file from the list")
	cmd.MarkFlagsMutuallyExclusive("pick", "clear", "forget")
	return cmd
}
