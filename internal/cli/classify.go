package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gduarte/massing/pkg/program"
)

// classifyCommand creates the classify command for inspecting the keyword
// classifier without running a full solve.
func (c *CLI) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <room-name>...",
		Short: "Show how room names map to types and categories",
		Long: `Show how room names map to types and categories.

Classification is keyword-based and recognizes English, Portuguese and
Spanish room names. Names with no recognized keyword fall back to
"unclassified" and are still massed with generic proportions.

Examples:
  massing classify "Master Bedroom" Cozinha "Sala de Estar"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				typ := program.Classify(name)
				cat := program.CategoryOf(typ)
				pol := program.PolicyFor(typ)

				line := fmt.Sprintf("%-30s %s %s", name, iconArrow, StyleValue.Render(string(typ)))
				fmt.Println(line)
				printDetail("category %s · ratios %s · min wall %.0fcm",
					cat, formatRatios(pol.Ratios), pol.MinWallCM)
			}
			return nil
		},
	}
}

func formatRatios(ratios []program.Ratio) string {
	s := ""
	for i, r := range ratios {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d:%d", r.W, r.D)
	}
	return s
}
