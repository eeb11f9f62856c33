// Package config provides configuration management for the sheetwatch CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Token is the Smartsheet API access token. Required.
	Token string `koanf:"token"`
	// SheetID is the identifier of the sheet to audit. Required.
	SheetID string `koanf:"sheet_id"`
	// Timezone is the IANA zone used to resolve "today".
	Timezone string `koanf:"timezone"`
	// WebhookURL is the optional Slack incoming-webhook endpoint.
	WebhookURL string `koanf:"webhook_url"`
	// APIURL overrides the Smartsheet API endpoint, e.g. for the EU
	// region (https://api.smartsheet.eu/2.0). Empty selects the default.
	APIURL string `koanf:"api_url"`
	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
}

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "America/Denver"

// Config file names, searched in order.
const (
	ConfigFileName    = "sheetwatch.yaml"
	ConfigFileNameAlt = "sheetwatch.yml"
)
