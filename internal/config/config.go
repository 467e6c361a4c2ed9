package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30m" parse with the
// standard duration syntax.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(dur)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	MarketData struct {
		BaseURL string   `yaml:"base_url"`
		Suffix  string   `yaml:"suffix"`
		Timeout Duration `yaml:"timeout"`
	} `yaml:"market_data"`
	Screener struct {
		MaxSymbols  int      `yaml:"max_symbols"`
		Concurrency int      `yaml:"concurrency"`
		CacheTTL    Duration `yaml:"cache_ttl"`
		DailyCron   string   `yaml:"daily_cron"`
	} `yaml:"screener"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Firebase struct {
		CredentialsPath string `yaml:"credentials_path"`
	} `yaml:"firebase"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env and defaults
// still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_PATH"); v != "" {
		cfg.Firebase.CredentialsPath = v
	}
	if v := os.Getenv("MARKETDATA_BASE_URL"); v != "" {
		cfg.MarketData.BaseURL = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.MarketData.BaseURL == "" {
		cfg.MarketData.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.MarketData.Suffix == "" {
		cfg.MarketData.Suffix = ".NS"
	}
	if cfg.MarketData.Timeout == 0 {
		cfg.MarketData.Timeout = Duration(30 * time.Second)
	}
	if cfg.Screener.MaxSymbols == 0 {
		cfg.Screener.MaxSymbols = 100
	}
	if cfg.Screener.Concurrency == 0 {
		cfg.Screener.Concurrency = 10
	}
	if cfg.Screener.CacheTTL == 0 {
		cfg.Screener.CacheTTL = Duration(time.Hour)
	}
	if cfg.Screener.DailyCron == "" {
		// 16:00 IST, after NSE close.
		cfg.Screener.DailyCron = "0 0 16 * * 1-5"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}

	return cfg, nil
}
