package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lifesim/config"
	"github.com/rustyeddy/lifesim/game"
	"github.com/rustyeddy/lifesim/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long: `Run a life simulation using settings from a configuration file, or the
defaults when no file is given. The autopilot policy from the config acts
before every month.

Example:
  lifesim run -f lifesim.yaml --seed 7 --verbose`,
	RunE: runRun,
}

var (
	runConfigPath string
	runSeed       int64
	runTurns      int
	runVerbose    bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "override the configured seed")
	runCmd.Flags().IntVar(&runTurns, "turns", 0, "override the configured turn limit")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print what happens every month")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(runConfigPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = runSeed
	}
	if cmd.Flags().Changed("turns") {
		cfg.Simulation.MaxTurns = runTurns
	}

	runner, err := sim.NewRunner(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer runner.Journal.Close()

	g := runner.Game
	bold := color.New(color.Bold)
	bold.Printf("%s, %s, age %d\n", g.State.Name, g.State.Career.Title, g.State.AgeYears)
	fmt.Printf("  Salary: $%.0f/yr, take-home $%.2f/month\n", g.State.Career.GrossAnnual, g.NetIncome())
	fmt.Printf("  Cash: $%.2f, net worth $%.2f\n\n", g.State.Portfolio.Cash, g.NetWorth())

	if runVerbose {
		runner.OnTurn = printReport
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx)
	sim.PrintResult(os.Stdout, res)
	printOutcome(res)
	return err
}

func printReport(rep game.Report) {
	header := color.New(color.FgCyan).SprintfFunc()
	fmt.Println(header("%04d-%02d", rep.Year, rep.Month))
	for _, line := range rep.Log {
		fmt.Println("  " + line)
	}
	if rep.Settlement.Streak > 0 {
		color.Red("  cash %.2f", rep.Cash)
	}
}

func printOutcome(res sim.Result) {
	fmt.Println()
	switch res.Outcome {
	case game.Victory:
		color.Green("You made it: %s", res.Reason)
	case game.Bankrupt:
		color.Red("Game over: %s", res.Reason)
	default:
		color.Yellow("Stopped after %d months", res.Turns)
	}
}
