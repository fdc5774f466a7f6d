package main

import (
	"fmt"
	"strings"

	"officerdrill/internal/exercise"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	showAnswers bool
	plainOutput bool
)

// catalogCmd prints the exercise content as a reference sheet
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the scenario cards and responsibilities",
	Long: `Print the exercise catalog as a reference sheet.

With --answers each card also lists the responsibility it belongs to and the
debrief feedback for instructors.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	md := catalogMarkdown(cat, showAnswers)
	if plainOutput {
		_, err = fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}

	style := glamour.WithAutoStyle()
	if cfg.UI.DarkMode {
		style = glamour.WithStylePath("dark")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// catalogMarkdown renders cat as a markdown document.
func catalogMarkdown(cat *exercise.Catalog, answers bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n%s\n\n", cat.Title, cat.Instructions)

	sb.WriteString("## Responsibilities\n\n")
	for i, z := range cat.Zones {
		fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, z.Title, z.Description)
	}

	fmt.Fprintf(&sb, "\n## Scenario Cards\n\nPlace %d cards in each responsibility.\n\n", cat.SlotsPerZone)
	for _, card := range cat.Cards {
		if head := card.Headline(); head != "" {
			fmt.Fprintf(&sb, "### %d. %s\n\n%s\n\n", card.ID, head, card.Body())
		} else {
			fmt.Fprintf(&sb, "### Card %d\n\n%s\n\n", card.ID, card.Body())
		}
		if !answers {
			continue
		}
		zone, _ := cat.Zone(card.CorrectZone)
		fmt.Fprintf(&sb, "> **Answer:** %s\n", zone.Title)
		if card.Feedback != "" {
			fmt.Fprintf(&sb, ">\n> %s\n", card.Feedback)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
