package cmd

import (
	"path/filepath"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/grasshopper"
	"github.com/spf13/cobra"
)

var (
	convertOutput string
	convertReport bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one member kind to a Grasshopper document",
	Long: `Extract one kind of member from a model export and write it as a
Grasshopper-friendly document.

Subcommands:
  columns         - AME columns, typed by ColumnName
  girders         - AME joist girders, typed by the "###G" prefix of Name
  joists          - AME joists, typed by JoistDesignation (K, LH, DLH)
  joists-by-name  - AME joists, typed by the K-series prefix of Name
  custom          - a kind declared in the config file

Elements without a name or a complete reference line, with an
unrecognised designation, or repeating the geometry of an earlier
member are skipped.`,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.PersistentFlags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: the kind's file in the output directory)")
	convertCmd.PersistentFlags().BoolVar(&convertReport, "report", false, "Print matched and skipped counts")
}

// convertKind runs the named kind over the input and writes its document.
// Nothing is written when the input cannot be read or parsed.
func convertKind(cmd *cobra.Command, name string) error {
	kind, err := registry.Lookup(name)
	if err != nil {
		return err
	}

	doc, err := loadModel()
	if err != nil {
		return err
	}

	res := newPipeline(kind).Run(doc)

	output := filepath.Join(cfg.OutputDir, kind.Output)
	if convertOutput != "" {
		output = convertOutput
	}
	if err := grasshopper.WriteFile(output, res.Output); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printExported(out, res, output)
	if convertReport {
		printReport(out, []*extract.Result{res})
	}
	return nil
}
