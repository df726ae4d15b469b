package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/datedim-labs/datedim/internal/holiday"
	"github.com/datedim-labs/datedim/internal/sink"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run system diagnostics",
		Long: `Run comprehensive system diagnostics.

Checks:
  - configuration
  - holiday calendar registry
  - Parquet engine availability
  - output directory writability`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDoctor()
		},
	}
}

func (c *CLI) runDoctor() error {
	c.println("Datedim System Diagnostics")
	c.println("==========================")
	c.println("")

	checks := []DiagnosticCheck{}
	allPassed := true

	for _, check := range []DiagnosticCheck{
		c.checkConfig(),
		c.checkCalendars(),
		c.checkParquetEngine(),
		c.checkOutputDir(),
	} {
		checks = append(checks, check)
		if !check.Passed {
			allPassed = false
		}
		c.printCheck(check)
	}

	c.println("")

	if c.jsonOutput {
		return c.outputJSON(map[string]interface{}{
			"checks":     checks,
			"all_passed": allPassed,
		})
	}

	if allPassed {
		c.println("✓ All checks passed")
	} else {
		c.println("✗ Some checks failed - see above for details")
	}

	return nil
}

// DiagnosticCheck represents a single diagnostic check result.
type DiagnosticCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (c *CLI) printCheck(check DiagnosticCheck) {
	status := "✗"
	if check.Passed {
		status = "✓"
	}
	c.printf("%s %s: %s\n", status, check.Name, check.Message)
	if check.Details != "" && !check.Passed {
		c.printf("  → %s\n", check.Details)
	}
}

func (c *CLI) checkConfig() DiagnosticCheck {
	check := DiagnosticCheck{Name: "Configuration"}

	if c.cfg == nil {
		check.Passed = false
		check.Message = "No configuration loaded"
		check.Details = "Create ~/.datedim/config.yaml or use --config flag"
		return check
	}

	if _, err := sink.New(c.cfg.Output.Format, sink.Options{}); err != nil {
		check.Passed = false
		check.Message = fmt.Sprintf("Invalid default output format: %s", c.cfg.Output.Format)
		check.Details = "Set output.format to one of: csv, parquet, sqlite, postgres"
		return check
	}

	check.Passed = true
	check.Message = fmt.Sprintf("Default format: %s", c.cfg.Output.Format)
	return check
}

func (c *CLI) checkCalendars() DiagnosticCheck {
	check := DiagnosticCheck{Name: "Holiday Calendars"}

	registry := holiday.NewRegistry()
	if err := registry.AddCountries("US"); err != nil {
		check.Passed = false
		check.Message = "Calendar registry failed to initialize"
		check.Details = fmt.Sprintf("Error: %v", err)
		return check
	}

	// A date that must be a holiday in any sane US calendar.
	if !registry.IsHoliday(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)) {
		check.Passed = false
		check.Message = "Calendar rules returned unexpected results"
		check.Details = "2024-12-25 was not flagged as a US holiday"
		return check
	}

	check.Passed = true
	check.Message = fmt.Sprintf("%d country, %d financial calendars available",
		len(holiday.CountryCodes()), len(holiday.MarketCodes()))
	return check
}

func (c *CLI) checkParquetEngine() DiagnosticCheck {
	check := DiagnosticCheck{Name: "Parquet Engine"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sink.PingParquetEngine(ctx); err != nil {
		check.Passed = false
		check.Message = "DuckDB engine unavailable"
		check.Details = fmt.Sprintf("Error: %v", err)
		return check
	}

	check.Passed = true
	check.Message = "DuckDB engine available"
	return check
}

func (c *CLI) checkOutputDir() DiagnosticCheck {
	check := DiagnosticCheck{Name: "Output Directory"}

	dir := "."
	if c.cfg != nil && c.cfg.Output.Path != "" {
		dir = filepath.Dir(c.cfg.Output.Path)
	}

	f, err := os.CreateTemp(dir, ".datedim-doctor-*")
	if err != nil {
		check.Passed = false
		check.Message = fmt.Sprintf("Cannot write to %s", dir)
		check.Details = fmt.Sprintf("Error: %v", err)
		return check
	}
	f.Close()
	os.Remove(f.Name())

	check.Passed = true
	check.Message = fmt.Sprintf("Writable: %s", dir)
	return check
}
