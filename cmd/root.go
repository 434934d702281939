package cmd

import (
	"fmt"
	"os"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/ame"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/config"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/extract"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/logging"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global options
	configFile      string
	inputFile       string
	fingerprintMode string
	logLevel        string
	logFormat       string

	// Resolved before any subcommand runs
	cfg      *config.Config
	registry *ame.Registry
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "amejson",
	Short: "AME model to Grasshopper converter",
	Long: `amejson - AME structural model to Grasshopper converter

Reads a model export (JSON with an "Elements" mapping) and writes one
flat document per member kind for the Grasshopper definitions:

  {"<kind>_types": [...], "start_pts": [...], "end_pts": [...]}

Members are selected by discriminator, classified by their designation,
and deduplicated by reference-line geometry (first occurrence wins).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   amejson v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   AME model to Grasshopper converter                      ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Columns, joist girders and joists from one model export")
		fmt.Fprintln(out, "    • Type codes read from designations (K, LH, DLH, G series)")
		fmt.Fprintln(out, "    • Duplicate members removed by reference-line geometry")
		fmt.Fprintln(out, "    • Plan-view check plots (ASCII, PNG, SVG, PDF)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'amejson --help' to see available commands.")
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	flags.StringVarP(&inputFile, "input", "i", "model.json", "Path to model JSON export")
	flags.StringVar(&fingerprintMode, "fingerprint", string(extract.Canonical), "Geometry fingerprint mode (canonical, literal)")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
}

// setup layers defaults, the config file and explicitly set flags.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = inputFile
	}
	if flags.Changed("fingerprint") {
		cfg.Fingerprint = fingerprintMode
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	registry, err = cfg.Registry()
	if err != nil {
		return err
	}

	logger, err = logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	return nil
}
