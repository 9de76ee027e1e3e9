package cmd

import (
	"fmt"

	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

var validateOnly bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that would be used, as TOML. Without --config the
built-in defaults are printed, which is a good starting point for a config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if validateOnly {
			name := configPath
			if name == "" {
				name = "defaults"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, chalk.Green.Color("ok"))
			return nil
		}
		return cfg.Write(cmd.OutOrStdout())
	},
}

func init() {
	configCmd.Flags().BoolVar(&validateOnly, "validate", false, "Only validate the configuration")
	rootCmd.AddCommand(configCmd)
}
