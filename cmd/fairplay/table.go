package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/fairplay/internal/moveset"
	"github.com/lox/fairplay/internal/table"
)

// TableCmd prints the full pairwise results matrix for a move set.
type TableCmd struct {
	Moves []string `arg:"" help:"Odd number (at least 3) of distinct move names"`
}

func (c *TableCmd) Run(cli *CLI) error {
	set, err := moveset.New(c.Moves)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Results for %d moves, from the row move's perspective", set.Len())
	if !cli.NoColor && termenv.ColorProfile() != termenv.Ascii {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	fmt.Println(title)
	fmt.Print(table.Build(set).Format())
	return nil
}
