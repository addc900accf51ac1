// Package config loads seosheet settings from an optional json5 file and
// the environment.
package config

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/fwojciec/seosheet"
)

// Backends.
const (
	BackendSheets = "sheets"
	BackendXLSX   = "xlsx"
)

// Generator providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds every setting for a run.
type Config struct {
	// SheetID is the Google spreadsheet key.
	SheetID string `json:"sheetId"`

	// GoogleCredentialsJSON is the service-account credential blob.
	GoogleCredentialsJSON string `json:"googleCredentialsJson"`

	// Backend selects the spreadsheet store: "sheets" or "xlsx".
	Backend string `json:"backend"`

	// WorkbookPath is the local workbook used by the xlsx backend.
	WorkbookPath string `json:"workbook"`

	// Instruction is the base system prompt sent to the generator.
	Instruction string `json:"instruction"`

	// SentinelMarker is written to A1 at the end of every run.
	SentinelMarker string `json:"sentinel"`

	// JournalPath enables the SQLite run journal when set.
	JournalPath string `json:"journal"`

	Generator GeneratorConfig `json:"generator"`
	Fetch     FetchConfig     `json:"fetch"`
	Log       LogConfig       `json:"log"`
}

// GeneratorConfig controls the LLM client.
type GeneratorConfig struct {
	Provider     string `json:"provider"`
	OpenAIAPIKey string `json:"openaiApiKey"`
	GeminiAPIKey string `json:"geminiApiKey"`
	// Model overrides the provider's default model.
	Model     string `json:"model"`
	MaxTokens int    `json:"maxTokens"`
	// BaseURL points the openai provider at a compatible API.
	BaseURL string `json:"baseUrl"`
}

// FetchConfig controls page rendering.
type FetchConfig struct {
	BodyTimeout Duration `json:"bodyTimeout"`
	SettleDelay Duration `json:"settleDelay"`
	Extractor   string   `json:"extractor"`
	Stealth     bool     `json:"stealth"`
	NoSandbox   bool     `json:"noSandbox"`
	// HostRPS limits fetches per host per second. Zero disables limiting.
	HostRPS    float64 `json:"hostRps"`
	BrowserBin string  `json:"browserBin"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // text or json
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Backend:        BackendSheets,
		Instruction:    seosheet.DefaultInstruction,
		SentinelMarker: seosheet.DefaultSentinelMarker,
		Generator: GeneratorConfig{
			Provider:  ProviderOpenAI,
			MaxTokens: seosheet.DefaultMaxTokens,
			BaseURL:   "https://api.openai.com/v1",
		},
		Fetch: FetchConfig{
			BodyTimeout: Duration(10 * time.Second),
			SettleDelay: Duration(2 * time.Second),
			Extractor:   seosheet.ExtractorText,
			NoSandbox:   true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SheetKey returns the identifier passed to the configured SheetStore.
func (c *Config) SheetKey() string {
	if c.Backend == BackendXLSX {
		return c.WorkbookPath
	}
	return c.SheetID
}

// Validate reports configuration that would make a run fail at start-up.
func (c *Config) Validate() error {
	if err := c.ValidateBackend(); err != nil {
		return err
	}
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	if err := c.Fetch.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// ValidateBackend checks the spreadsheet store settings.
func (c *Config) ValidateBackend() error {
	switch c.Backend {
	case BackendSheets:
		if c.SheetID == "" {
			return seosheet.Errorf(seosheet.EINVALID, "SHEET_ID required for the sheets backend")
		}
		if c.GoogleCredentialsJSON == "" {
			return seosheet.Errorf(seosheet.EUNAUTHORIZED, "GOOGLE_CREDENTIALS_JSON required for the sheets backend")
		}
		if !json.Valid([]byte(c.GoogleCredentialsJSON)) {
			return seosheet.Errorf(seosheet.EUNAUTHORIZED, "GOOGLE_CREDENTIALS_JSON is not valid JSON")
		}
	case BackendXLSX:
		if c.WorkbookPath == "" {
			return seosheet.Errorf(seosheet.EINVALID, "workbook path required for the xlsx backend")
		}
	default:
		return seosheet.Errorf(seosheet.EINVALID, "unknown backend %q", c.Backend)
	}
	return nil
}

// Validate checks the provider and its API key.
func (g GeneratorConfig) Validate() error {
	switch g.Provider {
	case ProviderOpenAI:
		if g.OpenAIAPIKey == "" {
			return seosheet.Errorf(seosheet.EUNAUTHORIZED, "OPENAI_API_KEY required for the openai generator")
		}
	case ProviderGemini:
		if g.GeminiAPIKey == "" {
			return seosheet.Errorf(seosheet.EUNAUTHORIZED, "GEMINI_API_KEY required for the gemini generator")
		}
	default:
		return seosheet.Errorf(seosheet.EINVALID, "unknown generator %q", g.Provider)
	}
	if g.MaxTokens <= 0 {
		return seosheet.Errorf(seosheet.EINVALID, "max tokens must be positive")
	}
	return nil
}

// Extractors lists the accepted extractor names.
var Extractors = []string{
	seosheet.ExtractorText,
	seosheet.ExtractorReadability,
	seosheet.ExtractorTrafilatura,
	seosheet.ExtractorMarkdown,
}

// Validate checks extractor name and timing values.
func (f FetchConfig) Validate() error {
	if !slices.Contains(Extractors, f.Extractor) {
		return seosheet.Errorf(seosheet.EINVALID, "unknown extractor %q", f.Extractor)
	}
	if f.BodyTimeout <= 0 {
		return seosheet.Errorf(seosheet.EINVALID, "body timeout must be positive")
	}
	if f.SettleDelay < 0 {
		return seosheet.Errorf(seosheet.EINVALID, "settle delay must not be negative")
	}
	if f.HostRPS < 0 {
		return seosheet.Errorf(seosheet.EINVALID, "host rps must not be negative")
	}
	return nil
}

// Validate checks level and format names.
func (l LogConfig) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level) {
		return seosheet.Errorf(seosheet.EINVALID, "unknown log level %q", l.Level)
	}
	if l.Format != "text" && l.Format != "json" {
		return seosheet.Errorf(seosheet.EINVALID, "unknown log format %q", l.Format)
	}
	return nil
}
