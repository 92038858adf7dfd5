package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ledpong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration",
	Long: `Inspect ledpong configuration.

Search order: --config, ~/.ledpong/config.yaml, ./configs/ledpong.yaml,
then the built-in defaults.

Examples:
  ledpong config defaults > ~/.ledpong/config.yaml
  ledpong config show
  ledpong config check ./my-board.yaml`,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default config",
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config and where it came from",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, source, err := config.LoadWithSource(flagConfig)
		if err != nil {
			exitf("%v", err)
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			exitf("%v", err)
		}
		fmt.Printf("# source: %s\n", source)
		os.Stdout.Write(out)
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := config.Load(args[0]); err != nil {
			exitf("%v", err)
		}
		fmt.Printf("%s: ok\n", args[0])
	},
}

func init() {
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}
