package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the member kinds that can be converted",
	Long: `List every registered member kind: the built-in AME kinds plus any
declared under "kinds" in the config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "MEMBER KINDS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tDiscriminator\tLabel field\tLine field\tType code\tOutput\n")
		fmt.Fprintf(w, "  ────\t─────────────\t───────────\t──────────\t─────────\t──────\n")
		for _, k := range registry.All() {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				k.Name, k.Discriminator, k.LabelField, k.LineField, k.Classifier, k.Output)
		}
		w.Flush()
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
