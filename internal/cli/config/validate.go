package config

import "fmt"

// Validate checks that required credentials are present. It runs before any
// network access so a misconfigured run fails fast.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("smartsheet token is required\nHint: set token in sheetwatch.yaml or the SHEETWATCH_TOKEN environment variable")
	}
	if c.SheetID == "" {
		return fmt.Errorf("sheet id is required\nHint: set sheet_id in sheetwatch.yaml or the SHEETWATCH_SHEET_ID environment variable")
	}
	return nil
}
