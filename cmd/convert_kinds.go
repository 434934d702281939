package cmd

import (
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/ame"
	"github.com/spf13/cobra"
)

var convertColumnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Export columns",
	Long: `Export every Elements.AMEColumn. The ColumnName is used as the
column type as-is; the CenterLine gives the start and end points.

Examples:
  amejson convert columns
  amejson convert columns -i model.json -o columns_for_grasshopper.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertKind(cmd, ame.Columns.Name)
	},
}

var convertGirdersCmd = &cobra.Command{
	Use:   "girders",
	Short: "Export joist girders",
	Long: `Export every Elements.AMEJoistGirder. The girder type is the
leading "###G" of the Name (300G8N10K → 300G); girders without one are
skipped. The TopOfSteelLine gives the start and end points.

Examples:
  amejson convert girders -i model.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertKind(cmd, ame.Girders.Name)
	},
}

var convertJoistsCmd = &cobra.Command{
	Use:   "joists",
	Short: "Export joists by designation (K, LH, DLH)",
	Long: `Export every Elements.AMEJoist. The joist type is the leading
series of the JoistDesignation (30K10 → 30K, 40LH12 → 40LH,
44DLH17 → 44DLH). The TopOfSteelSlopeLine gives the start and end points.

Examples:
  amejson convert joists -i model.json -o joists_for_grasshopper.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertKind(cmd, ame.Joists.Name)
	},
}

var convertJoistsByNameCmd = &cobra.Command{
	Use:   "joists-by-name",
	Short: "Export K-series joists by element name",
	Long: `Export every Elements.AMEJoist whose Name starts with a K-series
type (18K3 → 18K). LH and DLH joists are not recognised by this variant.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertKind(cmd, ame.JoistsByName.Name)
	},
}

var convertCustomCmd = &cobra.Command{
	Use:   "custom <kind>",
	Short: "Export a kind declared in the config file",
	Long: `Export a kind declared under "kinds" in the config file.

Examples:
  amejson -c amejson.yaml convert custom beams`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertKind(cmd, args[0])
	},
}

func init() {
	convertCmd.AddCommand(convertColumnsCmd)
	convertCmd.AddCommand(convertGirdersCmd)
	convertCmd.AddCommand(convertJoistsCmd)
	convertCmd.AddCommand(convertJoistsByNameCmd)
	convertCmd.AddCommand(convertCustomCmd)
}
