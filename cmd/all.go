package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/ame"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/grasshopper"
	"github.com/spf13/cobra"
)

var (
	allOutputDir string
	allKinds     []string
	allReport    bool
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Convert columns, girders and joists in one run",
	Long: `Load the model once and convert several kinds concurrently, writing
each kind's document to its default file name in the output directory.

Each kind keeps its own duplicate set; a column and a girder sharing a
line are both exported.

Examples:
  amejson all -i model.json
  amejson all -i model.json -d out --kinds columns,joists-by-name --report`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)

	allCmd.Flags().StringVarP(&allOutputDir, "output-dir", "d", "", "Output directory (default: config output_dir or .)")
	allCmd.Flags().StringSliceVarP(&allKinds, "kinds", "k", ame.Standard, "Kinds to convert")
	allCmd.Flags().BoolVar(&allReport, "report", false, "Print matched and skipped counts")
}

func runAll(cmd *cobra.Command, args []string) error {
	kinds, err := registry.LookupAll(allKinds)
	if err != nil {
		return err
	}

	doc, err := loadModel()
	if err != nil {
		return err
	}

	dir := cfg.OutputDir
	if allOutputDir != "" {
		dir = allOutputDir
	}

	results, err := extractAll(cmd.Context(), doc, kinds, func(res *extract.Result) error {
		path := filepath.Join(dir, res.Kind.Output)
		if err := grasshopper.WriteFile(path, res.Output); err != nil {
			return fmt.Errorf("%s: %w", res.Kind.Name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		printExported(out, res, filepath.Join(dir, res.Kind.Output))
	}
	if allReport {
		printReport(out, results)
	}
	return nil
}
