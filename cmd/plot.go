package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/ame"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/diagram"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/grasshopper"
	"github.com/spf13/cobra"
)

var (
	plotKinds       []string
	plotFrom        []string
	plotShowDiagram bool
	plotExportFile  string
	plotWidth       int
	plotHeight      int
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot extracted members in plan",
	Long: `Draw a plan view (XY, Z ignored) of the extracted members to check a
conversion before loading it into Grasshopper. Columns appear as points.

Members come from the model (--kinds) or from documents written
earlier (--from).

Examples:
  amejson plot -i model.json --diagram
  amejson plot -i model.json -o plan.svg
  amejson plot --from joists_for_grasshopper.json --from girders_for_grasshopper.json -o plan.png`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringSliceVarP(&plotKinds, "kinds", "k", ame.Standard, "Kinds to extract from the model")
	plotCmd.Flags().StringArrayVar(&plotFrom, "from", nil, "Plot a previously written document instead of the model")

	// Diagram options
	plotCmd.Flags().BoolVar(&plotShowDiagram, "diagram", false, "Show ASCII plan (default when no --output)")
	plotCmd.Flags().StringVarP(&plotExportFile, "output", "o", "", "Export plan to file (png, svg, pdf)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 72, "ASCII plan width in characters")
	plotCmd.Flags().IntVar(&plotHeight, "height", 24, "ASCII plan height in characters")
}

func runPlot(cmd *cobra.Command, args []string) error {
	layers, err := plotLayers(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if plotShowDiagram || plotExportFile == "" {
		fmt.Fprintln(out, diagram.DrawASCIIPlan(layers, plotWidth, plotHeight))
	}

	if plotExportFile != "" {
		if err := diagram.ExportPlan(layers, "Framing plan", plotExportFile); err != nil {
			return fmt.Errorf("export plan: %w", err)
		}
		fmt.Fprintf(out, "Plan exported to: %s\n", plotExportFile)
	}
	return nil
}

func plotLayers(cmd *cobra.Command) ([]diagram.Layer, error) {
	if len(plotFrom) > 0 {
		layers := make([]diagram.Layer, 0, len(plotFrom))
		for _, path := range plotFrom {
			d, err := grasshopper.ReadFile(path)
			if err != nil {
				return nil, err
			}
			layers = append(layers, diagram.LayerFromDocument(filepath.Base(path), d))
		}
		return layers, nil
	}

	kinds, err := registry.LookupAll(plotKinds)
	if err != nil {
		return nil, err
	}
	doc, err := loadModel()
	if err != nil {
		return nil, err
	}
	results, err := extractAll(cmd.Context(), doc, kinds, nil)
	if err != nil {
		return nil, err
	}

	layers := make([]diagram.Layer, 0, len(results))
	for _, res := range results {
		layers = append(layers, diagram.LayerFromDocument(res.Kind.Name, res.Output))
	}
	return layers, nil
}
