package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/datedim-labs/datedim/internal/holiday"
)

func (c *CLI) newCalendarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List supported holiday calendar codes",
		Long: `List the country and financial-market holiday calendars that can be
passed to 'datedim generate' with --country and --financial.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalendars()
		},
	}
}

type calendarInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (c *CLI) runCalendars() error {
	countries := make([]calendarInfo, 0)
	for _, code := range holiday.CountryCodes() {
		name, _ := holiday.CountryName(code)
		countries = append(countries, calendarInfo{Code: code, Name: name})
	}

	financial := make([]calendarInfo, 0)
	for _, code := range holiday.MarketCodes() {
		name, _ := holiday.MarketName(code)
		financial = append(financial, calendarInfo{Code: code, Name: name})
	}

	if c.jsonOutput {
		return c.outputJSON(map[string]interface{}{
			"countries": countries,
			"financial": financial,
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tKIND\tNAME")
	for _, info := range countries {
		fmt.Fprintf(w, "%s\tcountry\t%s\n", info.Code, info.Name)
	}
	for _, info := range financial {
		fmt.Fprintf(w, "%s\tfinancial\t%s\n", info.Code, info.Name)
	}
	w.Flush()

	return nil
}
