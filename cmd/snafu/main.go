package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mnmehta/benchmark-wrapper/pkg/benchmark"
	"github.com/mnmehta/benchmark-wrapper/pkg/exporter"
	"github.com/mnmehta/benchmark-wrapper/pkg/logger"
	"github.com/mnmehta/benchmark-wrapper/pkg/registry"

	// Import all built-in benchmarks to register them
	_ "github.com/mnmehta/benchmark-wrapper/pkg/benchmarks/sysinfo"
)

var version = "0.1.0"

// loadSettings reads tool-level settings from an optional snafu.yaml and the
// SNAFU_* environment. Per-benchmark configuration is resolved separately
// from each subcommand's own flags.
func loadSettings() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_encoding", "console")
	v.SetDefault("export_file", "")
	v.SetDefault("compress", false)

	v.SetConfigName("snafu")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.snafu")
	v.SetEnvPrefix("snafu")
	v.AutomaticEnv()
	_ = v.ReadInConfig() // settings file is optional

	return v
}

// newExporter opens the configured export destination, stdout by default
func newExporter(settings *viper.Viper) (*exporter.Exporter, error) {
	path := settings.GetString("export_file")
	compress := settings.GetBool("compress")
	if path == "" {
		return exporter.New(os.Stdout, compress), nil
	}
	return exporter.NewFile(path, compress)
}

// runBenchmark resolves the named benchmark's configuration from argv and the
// environment, drives its lifecycle, and exports each result as it arrives.
func runBenchmark(name string, args []string, settings *viper.Viper) error {
	b, err := registry.Create(name)
	if err != nil {
		return err
	}

	if err := b.Config().ParseArgs(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Usage of snafu %s:\n%s", name, b.Config().Usage())
			return nil
		}
		return err
	}

	exp, err := newExporter(settings)
	if err != nil {
		return err
	}

	runner := benchmark.NewRunner()
	for result := range runner.Run(b) {
		if err := exp.Export(result); err != nil {
			_ = exp.Close()
			return err
		}
	}

	if err := exp.Close(); err != nil {
		return err
	}

	logger.Info("export complete",
		zap.String("benchmark", name),
		zap.Int("results", exp.Exported()))
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	settings := loadSettings()

	root := &cobra.Command{
		Use:   "snafu",
		Short: "snafu - benchmark wrapper framework",
		Long: `snafu wraps benchmark tools behind a uniform lifecycle (setup, collect,
cleanup) and exports their results as line-delimited JSON records.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    settings.GetString("log_level"),
				Encoding: settings.GetString("log_encoding"),
			})
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("snafu v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available benchmarks",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available benchmarks:")
			for _, name := range registry.Names() {
				fmt.Printf("  - %s\n", name)
			}
		},
	})

	// One subcommand per registered benchmark. Flag parsing is left to the
	// benchmark's own config resolution, which owns the flag declarations.
	for _, name := range registry.Names() {
		benchName := name
		root.AddCommand(&cobra.Command{
			Use:                benchName,
			Short:              "Run the " + benchName + " benchmark wrapper",
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBenchmark(benchName, args, settings)
			},
		})
	}

	if err := root.Execute(); err != nil {
		logger.Error("snafu failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
