// Package tutorial holds the onboarding walkthrough command
//
// e.g., devyntra tutorial
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

const wrapWidth = 80

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Walk through the Devyntra workflow",
		Long: `Print a short walkthrough: log in, add a project, follow its analysis.

Use --raw to print the markdown source, e.g. to pipe it into another tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			return outputTutorial(raw)
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown without rendering it")
	return cmd
}

func outputTutorial(raw bool) error {
	if raw {
		fmt.Print(tutorialContent)
		return nil
	}

	out, err := render(tutorialContent)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func render(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
