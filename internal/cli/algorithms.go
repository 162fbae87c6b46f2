package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/maze/generate"
)

// algorithmsCommand creates the algorithms command listing the generation
// registry.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the registered generation algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(StyleTitle.Render("Generation algorithms"))
			fmt.Println()
			for _, alg := range generate.Algorithms() {
				badge := styleBadge.Render("rect")
				if alg.Polar {
					badge = styleBadge.Render("rect, polar")
				}
				fmt.Printf("  %s %s %s\n",
					styleName.Render(alg.Name),
					StyleDim.Render(alg.Description),
					badge)
			}
			fmt.Println()
			fmt.Println(StyleDim.Render("Use with: mazetower generate -a <name>"))
		},
	}
}
