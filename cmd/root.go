package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geocell/config"
	"geocell/index"
	"geocell/logging"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// app carries the state shared by subcommands once the root has loaded config.
type app struct {
	cfgFile string
	output  string
	verbose bool

	cfg    *config.Config
	logger *logrus.Logger
}

// NewRootCmd returns the root command for the geocell CLI
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "geocell",
		Short:         "Encode, decode and expand geohashes",
		Long:          "geocell converts coordinates to geohash cells and back, lists adjacent cells and looks up points near a coordinate.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./geocell.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text|json|geojson (default: text)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newNeighborCmd(a))
	rootCmd.AddCommand(newExpandCmd(a))
	rootCmd.AddCommand(newNearbyCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.output == "" {
		a.output = cfg.Output
	}
	switch a.output {
	case outputText, outputJSON, outputGeoJSON:
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	a.logger = logging.NewLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)
	index.SetLogger(a.logger)
	a.cfg = cfg

	a.logger.WithFields(logging.Fields{
		"config": a.cfgFile,
		"output": a.output,
	}).Debug("configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the geocell version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "geocell %s\n", Version)
			return nil
		},
	}
}
