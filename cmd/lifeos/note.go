// ABOUTME: CLI commands for knowledge notes.
// ABOUTME: Add and search; notes are append-only.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var noteTags string

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Capture and search knowledge notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> <content...>",
	Short: "Add a note",
	Long: `Add a note. Tags are stored lowercased so search is case-insensitive.

EXAMPLES:

  lifeos note add "SQLite WAL" "checkpointing moves pages back into the db file" --tags db,sqlite`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := models.NewNote(args[0], strings.Join(args[1:], " "), noteTags)
		if err := repos.Notes.Add(n); err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}
		color.Green("✓ Note saved")
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(shortID(n.ID)), n.Title)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"search"},
	Short:   "List notes, newest first, optionally filtered",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		notes, err := repos.Notes.Search(query)
		if err != nil {
			return fmt.Errorf("failed to search notes: %w", err)
		}
		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, n := range notes {
			tags := ""
			if n.Tags != "" {
				tags = faint.Sprintf(" [%s]", n.Tags)
			}
			fmt.Printf("%s %s  %s%s\n",
				faint.Sprint(shortID(n.ID)),
				faint.Sprint(n.CreatedAt.Format("2006-01-02")),
				n.Title, tags)
		}
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteTags, "tags", "", "comma-separated tags")
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	rootCmd.AddCommand(noteCmd)
}
