package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/snapcircle/internal/app"
	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/philipparndt/snapcircle/version"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "snapcircle",
	Short: "Interactive circle and line with snapping endpoints",
	Long: `SnapCircle shows a resizable circle and a line whose endpoints snap to the
circle's boundary while dragged and follow it when the circle is resized.

Drag the handle in the middle of the circle up or down to change the radius.
Drag either end of the line close to the circle to attach it.`,
	Args:          cobra.NoArgs,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Config:     cfg,
			ConfigPath: configPath,
			Verbose:    verbose,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print gesture transitions")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, chalk.Red)
		fmt.Fprintf(os.Stderr, "Error: %v", err)
		fmt.Fprintln(os.Stderr, chalk.Reset)
		os.Exit(1)
	}
}
