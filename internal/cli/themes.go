package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/yanderlabs/mindweave/pkg/render/radial"
)

// themesCommand creates the themes command listing the available visual themes.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available visual themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

			rows := [][]string{}
			for _, name := range radial.Names() {
				theme := radial.ByName(name)

				display := name
				if name == radial.DefaultTheme {
					display = name + " " + StyleDim.Render("(default)")
				}

				var swatches []string
				for _, color := range theme.Palette {
					swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
					swatches = append(swatches, swatch)
				}

				background := theme.Background
				mode := "dark"
				if theme.Flat {
					mode = "flat"
				}

				rows = append(rows, []string{display, background, mode, strings.Join(swatches, " ")})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Theme", "Background", "Style", "Palette").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle()
				})

			fmt.Println(t.Render())
			printNextStep("Render with a theme", "mindweave render outline.json --theme midnight")
			return nil
		},
	}
}
