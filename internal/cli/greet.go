package cli

import (
	"time"

	"github.com/nix-polyglot/glot/internal/greeting"
	"github.com/spf13/cobra"
)

var (
	greetName  string
	greetCount int
)

func init() {
	greetCmd.Flags().StringVarP(&greetName, "name", "n", "", "Name to greet")
	greetCmd.Flags().IntVarP(&greetCount, "count", "c", 1, "Number of greetings")
	rootCmd.AddCommand(greetCmd)
}

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Run the Python console template's greeting",
	Long: `Print the greeting, description and creation timestamp of the Python
console template. With --count greater than one the greeting is repeated as
a numbered list.

Examples:
  glot greet
  glot greet --name Bob
  glot greet -n Alice -c 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := greeting.Request{Name: greetName, Count: greetCount}
		return greeting.Print(cmd.OutOrStdout(), req, time.Now())
	},
}
