package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
)

// lessonsCommand prints the lesson numbers used in the file.
func (c *CLI) lessonsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "lessons",
		Short:   "List lesson numbers",
		GroupID: groupBrowse,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readStore()
			if err != nil {
				return err
			}
			lessons := s.SortedLessons()
			if len(lessons) == 0 {
				printInfo("No lessons")
				return nil
			}
			for _, n := range lessons {
				fmt.Printf("%s %s\n", StyleNumber.Render(strconv.Itoa(n)),
					StyleDim.Render(plural(len(s.LessonItems(n)), "entry", "entries")))
			}
			return nil
		},
	}
}

// lessonCommand prints every entry of a lesson across all categories.
func (c *CLI) lessonCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "lesson <number>",
		Short:   "List the entries of a lesson",
		GroupID: groupBrowse,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseLesson(args[0])
			if err != nil {
				return err
			}
			s, err := c.readStore()
			if err != nil {
				return err
			}
			printEntries(s.LessonItems(n), false)
			return nil
		},
	}
}

// statsCommand summarizes the file.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Summarize the vocabulary file",
		GroupID: groupBrowse,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readStore()
			if err != nil {
				return err
			}

			labels := 0
			for _, name := range s.Categories() {
				items, _ := s.VocabItems(name)
				for _, e := range items {
					if e.IsCategoryLabel() {
						labels++
					}
				}
			}

			lessons := s.SortedLessons()
			names := make([]string, len(lessons))
			for i, n := range lessons {
				names[i] = strconv.Itoa(n)
			}

			printKeyValue("Categories", strconv.Itoa(s.CategoryCount()))
			printKeyValue("Entries", strconv.Itoa(s.VocabCount()-labels))
			printKeyValue("Labels", strconv.Itoa(labels))
			printKeyValue("Lessons", strings.Join(names, ", "))
			printCounts(s.CategoryCount(), s.VocabCount())
			return nil
		},
	}
}

// parseLesson parses a lesson argument.
func parseLesson(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, verrors.New(verrors.ErrCodeInvalidInput, "lesson must be a non-negative integer, got %q", arg)
	}
	return n, nil
}
