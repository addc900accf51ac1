package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/seosheet"
	"github.com/titanous/json5"
)

// Load builds a Config from defaults, the optional config file at path and
// its ".local" sibling, then the environment. Later sources win, including
// explicit false and zero values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := ReadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// ReadFile decodes a json5 config file onto cfg, then "<name>.local.<ext>"
// when present. Only keys present in a file are assigned, so anything a file
// omits keeps its current value. Returns ENOTFOUND if neither file exists.
func ReadFile(name string, cfg *Config) error {
	found := false
	for _, p := range []string{name, LocalPath(name)} {
		err := readJSON5(p, cfg)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		found = true
	}

	if !found {
		return seosheet.Errorf(seosheet.ENOTFOUND, "config file %q not found", name)
	}
	return nil
}

// LocalPath returns the override path for a config file:
// "seosheet.json5" becomes "seosheet.local.json5".
func LocalPath(name string) string {
	dir := filepath.Dir(name)
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+".local"+ext)
}

func readJSON5(name string, v any) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fs.ErrNotExist
	}
	if err := json5.Unmarshal(data, v); err != nil {
		return seosheet.Errorf(seosheet.EINVALID, "parsing %s: %v", name, err)
	}
	return nil
}

func applyEnv(c *Config) {
	c.SheetID = envOr("SHEET_ID", c.SheetID)
	c.GoogleCredentialsJSON = envOr("GOOGLE_CREDENTIALS_JSON", c.GoogleCredentialsJSON)
	c.Backend = envOr("SEOSHEET_BACKEND", c.Backend)
	c.WorkbookPath = envOr("SEOSHEET_WORKBOOK", c.WorkbookPath)
	c.Instruction = envOr("SEOSHEET_INSTRUCTION", c.Instruction)
	c.SentinelMarker = envOr("SEOSHEET_SENTINEL", c.SentinelMarker)
	c.JournalPath = envOr("SEOSHEET_JOURNAL", c.JournalPath)

	c.Generator.Provider = envOr("SEOSHEET_GENERATOR", c.Generator.Provider)
	c.Generator.OpenAIAPIKey = envOr("OPENAI_API_KEY", c.Generator.OpenAIAPIKey)
	c.Generator.GeminiAPIKey = envOr("GEMINI_API_KEY", c.Generator.GeminiAPIKey)
	c.Generator.Model = envOr("SEOSHEET_MODEL", c.Generator.Model)
	c.Generator.MaxTokens = envIntOr("SEOSHEET_MAX_TOKENS", c.Generator.MaxTokens)
	c.Generator.BaseURL = envOr("OPENAI_BASE_URL", c.Generator.BaseURL)

	c.Fetch.BodyTimeout = Duration(envDurationOr("SEOSHEET_BODY_TIMEOUT", c.Fetch.BodyTimeout.Std()))
	c.Fetch.SettleDelay = Duration(envDurationOr("SEOSHEET_SETTLE_DELAY", c.Fetch.SettleDelay.Std()))
	c.Fetch.Extractor = envOr("SEOSHEET_EXTRACTOR", c.Fetch.Extractor)
	c.Fetch.Stealth = envBoolOr("SEOSHEET_STEALTH", c.Fetch.Stealth)
	c.Fetch.NoSandbox = envBoolOr("SEOSHEET_NO_SANDBOX", c.Fetch.NoSandbox)
	c.Fetch.HostRPS = envFloatOr("SEOSHEET_HOST_RPS", c.Fetch.HostRPS)
	c.Fetch.BrowserBin = envOr("SEOSHEET_BROWSER_BIN", c.Fetch.BrowserBin)

	c.Log.Level = envOr("SEOSHEET_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOr("SEOSHEET_LOG_FORMAT", c.Log.Format)
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
