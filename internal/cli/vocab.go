package cli

import (
	"github.com/spf13/cobra"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

// entryFlags holds the reading and lesson flags shared by add and edit.
type entryFlags struct {
	english string
	romaji  string
	kana    string
	kanji   string
	lesson  int
}

func (f *entryFlags) register(cmd *cobra.Command, withEnglish bool) {
	if withEnglish {
		cmd.Flags().StringVarP(&f.english, "english", "e", "", "new English meaning")
	}
	cmd.Flags().StringVarP(&f.romaji, "romaji", "r", "", "reading in romaji")
	cmd.Flags().StringVarP(&f.kana, "kana", "k", "", "reading in kana")
	cmd.Flags().StringVarP(&f.kanji, "kanji", "j", "", "written form in kanji")
	cmd.Flags().IntVarP(&f.lesson, "lesson", "n", 0, "lesson number")
}

// anyChanged reports whether the user set at least one entry field flag.
func (f *entryFlags) anyChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"english", "romaji", "kana", "kanji", "lesson"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply copies every flag the user set onto e.
func (f *entryFlags) apply(cmd *cobra.Command, e vocab.Entry) vocab.Entry {
	flags := cmd.Flags()
	if flags.Changed("english") {
		e.English = f.english
	}
	if flags.Changed("romaji") {
		e.Romaji = f.romaji
	}
	if flags.Changed("kana") {
		e.Kana = f.kana
	}
	if flags.Changed("kanji") {
		e.Kanji = f.kanji
	}
	if flags.Changed("lesson") {
		e.Lesson = f.lesson
	}
	return e
}

// listCommand prints the entries of one category.
func (c *CLI) listCommand() *cobra.Command {
	var labels bool

	cmd := &cobra.Command{
		Use:               "list <category>",
		Aliases:           []string{"ls"},
		Short:             "List the entries of a category",
		GroupID:           groupBrowse,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeFirstCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readStore()
			if err != nil {
				return err
			}
			items, ok := s.VocabItems(args[0])
			if !ok {
				return categoryNotFound(args[0])
			}
			printEntries(items, labels)
			return nil
		},
	}

	cmd.Flags().BoolVar(&labels, "labels", false, "include category label entries")
	return cmd
}

// addCommand adds one entry to a category.
func (c *CLI) addCommand() *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:               "add <category> <english>",
		Short:             "Add a vocabulary entry",
		Example:           "  " + appName + " add Food rice --romaji gohan --kana ごはん --kanji ご飯 --lesson 3",
		GroupID:           groupEdit,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFirstCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, english := args[0], args[1]
			if err := verrors.ValidateEnglish(english); err != nil {
				return err
			}
			entry := vocab.NewEntry(english, f.romaji, f.kana, f.kanji, f.lesson)
			if err := entry.Validate(); err != nil {
				return verrors.Wrap(verrors.ErrCodeInvalidInput, err, "invalid entry")
			}

			err := c.edit(func(s *vocab.Store) error {
				if !s.HasCategory(category) {
					return categoryNotFound(category)
				}
				if !s.AddVocabItem(category, entry) {
					return verrors.New(verrors.ErrCodeInvalidInput, "%q already exists in %s", english, category)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Added %s to %s", StyleValue.Render(entry.String()), category)
			return nil
		},
	}

	f.register(cmd, false)
	return cmd
}

// editCommand changes fields of an existing entry. Editing a category's own
// label with --english renames the category.
func (c *CLI) editCommand() *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:               "edit <category> <english>",
		Short:             "Change a vocabulary entry",
		Example:           "  " + appName + " edit Food rice --lesson 4\n  " + appName + " edit Food '#Food' --english Meals",
		GroupID:           groupEdit,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFirstCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, english := args[0], args[1]
			if !f.anyChanged(cmd) {
				return verrors.New(verrors.ErrCodeInvalidInput, "nothing to change; pass at least one field flag")
			}

			err := c.edit(func(s *vocab.Store) error {
				if !s.HasCategory(category) {
					return categoryNotFound(category)
				}
				current, ok := s.FindVocabItem(category, english)
				if !ok {
					return entryNotFound(category, english)
				}
				updated := f.apply(cmd, current)
				if !current.IsCategoryLabel() && updated.English != current.English {
					if err := verrors.ValidateEnglish(updated.English); err != nil {
						return err
					}
				}
				if err := updated.Validate(); err != nil {
					return verrors.Wrap(verrors.ErrCodeInvalidInput, err, "invalid entry")
				}
				if !s.UpdateVocabItem(category, english, updated) {
					return verrors.New(verrors.ErrCodeInvalidInput, "cannot change %q in %s to %q", english, category, updated.English)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Updated %s", StyleValue.Render(english))
			return nil
		},
	}

	f.register(cmd, true)
	return cmd
}

// removeCommand deletes an entry from a category.
func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <category> <english>",
		Aliases:           []string{"rm"},
		Short:             "Remove a vocabulary entry",
		GroupID:           groupEdit,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFirstCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, english := args[0], args[1]
			err := c.edit(func(s *vocab.Store) error {
				if !s.HasCategory(category) {
					return categoryNotFound(category)
				}
				if !s.RemoveVocabItem(category, vocab.Entry{English: english}) {
					return entryNotFound(category, english)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Removed %s from %s", StyleValue.Render(english), category)
			return nil
		},
	}
}

// moveCommand moves an entry to another category.
func (c *CLI) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "move <from> <to> <english>",
		Aliases: []string{"mv"},
		Short:   "Move a vocabulary entry to another category",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) < 2 {
				return c.completeCategories(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, english := args[0], args[1], args[2]
			err := c.edit(func(s *vocab.Store) error {
				for _, name := range []string{from, to} {
					if !s.HasCategory(name) {
						return categoryNotFound(name)
					}
				}
				e, ok := s.FindVocabItem(from, english)
				if !ok {
					return entryNotFound(from, english)
				}
				if e.IsCategoryLabel() {
					return verrors.New(verrors.ErrCodeInvalidInput, "category labels cannot be moved")
				}
				if !s.MoveVocabItem(from, to, english) {
					return verrors.New(verrors.ErrCodeInvalidInput, "cannot move %q from %s to %s", english, from, to)
				}
				return nil
			})
			if err != nil {
				return err
			}
			printSuccess("Moved %s %s %s %s", StyleValue.Render(english), from, iconArrow, to)
			return nil
		},
	}
}

func entryNotFound(category, english string) error {
	return verrors.New(verrors.ErrCodeNotFound, "%q not found in %s", english, category)
}
