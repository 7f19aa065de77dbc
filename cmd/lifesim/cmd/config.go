package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lifesim/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage configuration files for simulations.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  lifesim config init -o my-life.yaml
  lifesim config validate -f my-life.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "lifesim.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	color.Green("✓ Created default configuration: %s", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  lifesim run -f %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	color.Green("✓ Configuration valid: %s", configValidatePath)
	fmt.Printf("  Player: %s, %s, age %d\n", cfg.Player.Name, cfg.Player.Profession, cfg.Player.StartAge)
	fmt.Printf("  Period: %d-%02d to %d (or age %d)\n", cfg.Simulation.StartYear, cfg.Simulation.StartMonth, cfg.Simulation.EndYear, cfg.Simulation.EndAge)
	fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	fmt.Printf("  Policy: %s\n", cfg.Policy.Type)
	return nil
}
