package cli

import "testing"

// TestExecute_ExitCodes verifies error categories map to process exit codes.
func TestExecute_ExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"missing dates", []string{"generate"}, ExitValidation},
		{"reversed range", []string{"generate", "-s", "2024-12-31", "-e", "2024-01-01"}, ExitValidation},
		{"unknown country", []string{"generate", "-s", "2024-01-01", "-e", "2024-01-02", "-c", "XX"}, ExitValidation},
		{"unknown format", []string{"generate", "-s", "2024-01-01", "-e", "2024-01-02", "-o", "xml"}, ExitValidation},
		{"version", []string{"version"}, ExitSuccess},
		{"calendars", []string{"calendars"}, ExitSuccess},
		{"describe", []string{"describe", "2024-12-25", "-c", "US"}, ExitSuccess},
		{"describe bad date", []string{"describe", "not-a-date"}, ExitValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.rootCmd.SetArgs(tc.args)
			if got := c.Execute(); got != tc.want {
				t.Fatalf("expected exit code %d, got %d", tc.want, got)
			}
		})
	}
}
