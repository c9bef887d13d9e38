package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"goroster/adapters/export"
	"goroster/adapters/tabular"
	"goroster/domain/core"
	"goroster/domain/employee"
	"goroster/domain/roster"
	"goroster/internal/analytics"
	"goroster/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goroster",
		Short: "Generate shift rosters from messy employee sheets",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newSampleCmd(),
		newInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var startStr string
	var days int
	var out string
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "generate [input-file]",
		Short: "Build a roster workbook from an employee sheet",
		Long: `Decode an employee sheet, normalize it and write a styled roster workbook.

Example: goroster generate staff.xlsx --start 2024-03-01 --days 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := core.NextMonthStart(time.Now())
			if startStr != "" {
				parsed, err := core.ParseDate(startStr)
				if err != nil {
					return fmt.Errorf("invalid --start (use YYYY-MM-DD): %w", err)
				}
				start = parsed
			}

			return runGenerate(args[0], start, days, out, asCSV)
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Roster start date, YYYY-MM-DD (default: first of next month)")
	cmd.Flags().IntVar(&days, "days", roster.DefaultHorizonDays, "Horizon length in days")
	cmd.Flags().StringVar(&out, "out", "", "Output path (default: Roster_<Month>_<Year>.xlsx)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write plain CSV instead of a styled workbook")

	return cmd
}

func runGenerate(inputPath string, start core.Date, days int, out string, asCSV bool) error {
	records, resolution, err := normalizeFile(inputPath)
	if err != nil {
		return err
	}

	grid := roster.Generate(records, start, days)
	summary, err := analytics.Summarize(grid)
	if err != nil {
		return fmt.Errorf("failed to summarize roster: %w", err)
	}

	writer := export.NewExcelWriter()
	if out == "" {
		out = writer.Filename(start)
		if asCSV {
			out = "roster.csv"
		}
	}

	if asCSV {
		file, err := os.Create(out)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := export.NewCSVWriter().Write(file, grid); err != nil {
			return err
		}
	} else {
		workbook, err := writer.Write(grid)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, workbook, 0o644); err != nil {
			return err
		}
	}

	fmt.Printf("Wrote %s\n\n", out)
	printSummary(resolution, summary)
	return nil
}

func newSampleCmd() *cobra.Command {
	var seed int64
	var count int

	cmd := &cobra.Command{
		Use:   "sample [output-file]",
		Short: "Write a messy sample employee sheet for trying the tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit := testkit.NewTestKit(seed)
			data, err := kit.SampleCSV(count)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %d-employee sample sheet to %s\n", count, args[0])
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic output")
	cmd.Flags().IntVar(&count, "count", 12, "Number of employees in the sample")

	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input-file]",
		Short: "Decode and normalize only, showing how the header resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, resolution, err := normalizeFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Strategy:  %s\n", resolution.Strategy)
			fmt.Printf("Columns:\n")
			for field, idx := range resolution.Columns {
				fmt.Printf("  %-12s -> column %d\n", field, idx)
			}
			fmt.Printf("Records:   %d\n", len(records))
			for i, rec := range records {
				if i >= 10 {
					fmt.Printf("  ... and %d more\n", len(records)-i)
					break
				}
				fmt.Printf("  [%d] %s | %s | %s\n", i, rec.EmployeeID, rec.Name, rec.Department)
			}
			return nil
		},
	}
}

func normalizeFile(path string) ([]employee.Record, employee.Resolution, error) {
	raw, err := tabular.NewReader().DecodeFile(path)
	if err != nil {
		return nil, employee.Resolution{}, err
	}

	resolution, err := employee.Resolve(raw)
	if err != nil {
		return nil, employee.Resolution{}, err
	}

	return employee.Project(resolution), resolution, nil
}

func printSummary(resolution employee.Resolution, summary analytics.Summary) {
	fmt.Printf("Strategy:      %s\n", resolution.Strategy)
	fmt.Printf("Employees:     %d\n", summary.Employees)
	fmt.Printf("Horizon:       %s to %s (%d days)\n", summary.StartDate, summary.EndDate, summary.Days)
	fmt.Printf("Day shifts:    %d\n", summary.DayShifts)
	fmt.Printf("Night shifts:  %d\n", summary.NightShifts)
	fmt.Printf("Week-offs:     %d\n", summary.WeekOffs)
	fmt.Printf("Workdays/emp:  mean %.1f, median %.1f, min %.0f, max %.0f, stddev %.2f\n",
		summary.Workdays.Mean, summary.Workdays.Median, summary.Workdays.Min, summary.Workdays.Max, summary.Workdays.StdDev)
	fmt.Printf("Balance p:     %.3f\n", summary.BalanceP)
}
