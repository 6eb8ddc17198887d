package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

// categoriesCommand lists every category with its entry count.
func (c *CLI) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List categories",
		GroupID: groupBrowse,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readStore()
			if err != nil {
				return err
			}
			if s.CategoryCount() == 0 {
				printInfo("No categories")
				printNextStep("Create one with", appName+" add-category <name>")
				return nil
			}
			fmt.Println(categoryTable(s))
			return nil
		},
	}
}

func categoryTable(s *vocab.Store) string {
	var rows [][]string
	for _, name := range s.Categories() {
		items, _ := s.VocabItems(name)
		words, labeled := 0, "no"
		for _, e := range items {
			if e.IsCategoryLabel() {
				labeled = "yes"
			} else {
				words++
			}
		}
		rows = append(rows, []string{name, strconv.Itoa(words), labeled})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Entries", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1:
				return StyleNumber
			case col == 2:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// addCategoryCommand creates an empty category, optionally with its label.
func (c *CLI) addCategoryCommand() *cobra.Command {
	var label bool

	cmd := &cobra.Command{
		Use:     "add-category <name>",
		Short:   "Create a category",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := verrors.ValidateCategoryName(name); err != nil {
				return err
			}
			err := c.edit(func(s *vocab.Store) error {
				var added bool
				if label {
					added = s.AddLabeledCategory(name)
				} else {
					added = s.AddCategory(name)
				}
				if !added {
					return verrors.New(verrors.ErrCodeInvalidInput, "category %q already exists", name)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Added category %s", StyleValue.Render(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&label, "label", "l", false, "also add the #<name> label entry")
	return cmd
}

// renameCategoryCommand renames a category, keeping its entries.
func (c *CLI) renameCategoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "rename-category <old> <new>",
		Short:             "Rename a category",
		GroupID:           groupEdit,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFirstCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			oldName, newName := args[0], args[1]
			if err := verrors.ValidateCategoryName(newName); err != nil {
				return err
			}
			err := c.edit(func(s *vocab.Store) error {
				if !s.HasCategory(oldName) {
					return categoryNotFound(oldName)
				}
				if !s.RenameCategory(oldName, newName) {
					return verrors.New(verrors.ErrCodeInvalidInput, "category %q already exists", newName)
				}
				// Keep a matching label in step with the name.
				if label, ok := s.FindVocabItem(newName, vocab.CategoryLabel(oldName).English); ok {
					label.English = vocab.CategoryLabel(newName).English
					s.UpdateVocabItem(newName, vocab.CategoryLabel(oldName).English, label)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Renamed %s %s %s", oldName, iconArrow, StyleValue.Render(newName))
			return nil
		},
	}
}

// removeCategoryCommand deletes a category that holds no vocabulary.
func (c *CLI) removeCategoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "remove-category <name>",
		Aliases:           []string{"rm-category"},
		Short:             "Remove an empty category",
		Long:              "Remove a category. Only categories without vocabulary can be removed; move or remove the entries first.",
		GroupID:           groupEdit,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeFirstCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			err := c.edit(func(s *vocab.Store) error {
				if !s.HasCategory(name) {
					return categoryNotFound(name)
				}
				if !s.RemoveCategory(name) {
					return verrors.New(verrors.ErrCodeInvalidInput, "category %q still contains vocabulary", name)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Removed category %s", StyleValue.Render(name))
			return nil
		},
	}
}

func categoryNotFound(name string) error {
	return verrors.New(verrors.ErrCodeNotFound, "category %q not found", name)
}

// completeFirstCategory completes only the first positional argument.
func (c *CLI) completeFirstCategory(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return c.completeCategories(cmd, args, toComplete)
}
