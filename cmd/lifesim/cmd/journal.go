package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lifesim/journal"
	"github.com/rustyeddy/lifesim/player"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the simulation journal",
	Long: `Query and display runs recorded in a SQLite journal.

Subcommands:
  runs      - List recorded runs
  turns     - Month by month snapshots of a run
  cashflow  - Every cash movement of a run
  report    - Org-mode summary of a run

Examples:
  lifesim journal runs
  lifesim journal cashflow <run-id> --category salary
  lifesim journal report <run-id> > run.org`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalTurnsCmd = &cobra.Command{
	Use:   "turns <run-id>",
	Short: "Show every month of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTurns,
}

var journalCashFlowCmd = &cobra.Command{
	Use:   "cashflow <run-id>",
	Short: "Show the cash movements of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalCashFlow,
}

var journalReportCmd = &cobra.Command{
	Use:   "report <run-id>",
	Short: "Print an Org-mode summary of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalReport,
}

var (
	journalDBPath   string
	journalCategory string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalTurnsCmd)
	journalCmd.AddCommand(journalCashFlowCmd)
	journalCmd.AddCommand(journalReportCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./lifesim.sqlite", "path to SQLite journal DB")
	journalCashFlowCmd.Flags().StringVarP(&journalCategory, "category", "c", "", "only show one category")
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.Runs()
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tFROM\tTO\tTURNS\tNET WORTH\tOUTCOME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n", r.RunID, r.FirstDate, r.LastDate, r.Turns, r.FinalNetWorth, r.Outcome)
	}
	return w.Flush()
}

func runJournalTurns(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	turns, err := j.ListTurns(args[0])
	if err != nil {
		return fmt.Errorf("query turns: %w", err)
	}
	if len(turns) == 0 {
		return fmt.Errorf("run %q not found", args[0])
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TURN\tDATE\tAGE\tCASH\tSAVINGS\tDEBT\tNET WORTH\tHAPPY\tEVENT")
	for _, t := range turns {
		event := t.Event
		if t.Family != "" {
			event = t.Family
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%s\n",
			t.Turn, t.Date, t.Age, t.Cash, t.Savings, t.Debt, t.NetWorth, t.Happiness, event)
	}
	return w.Flush()
}

func runJournalCashFlow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	flows, err := j.ListCashFlow(args[0], journalCategory)
	if err != nil {
		return fmt.Errorf("query cash flow: %w", err)
	}

	in := color.New(color.FgGreen).SprintfFunc()
	out := color.New(color.FgRed).SprintfFunc()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tBALANCE")
	for _, c := range flows {
		amount := in("+%.2f", c.Amount)
		if c.Type == player.Expense {
			amount = out("-%.2f", c.Amount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n", c.Date, amount, c.Category, c.Description, c.BalanceAfter)
	}
	return w.Flush()
}

func runJournalReport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	r, err := j.Report(args[0])
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}
	org, err := journal.FormatOrg(r)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}
	fmt.Print(org)
	return nil
}
