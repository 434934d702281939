package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
)

func printExported(out io.Writer, res *extract.Result, path string) {
	fmt.Fprintf(out, "✅ Exported %d %ss to %s\n", res.Exported(), res.Kind.Label, path)
}

// printReport prints matched, exported and skipped counts per kind.
func printReport(out io.Writer, results []*extract.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "EXTRACTION REPORT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Kind\tMatched\tExported")
	for _, r := range extract.Reasons {
		fmt.Fprintf(w, "\t%s", r)
	}
	fmt.Fprintln(w)
	for _, res := range results {
		fmt.Fprintf(w, "  %s\t%d\t%d", res.Kind.Name, res.Matched, res.Exported())
		for _, r := range extract.Reasons {
			fmt.Fprintf(w, "\t%d", res.Rejected[r])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)
}
