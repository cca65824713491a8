package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/Elwinc2799/credit-card-crawler/internal/domain"
)

const DefaultDir = "configs"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Scraping ScrapingConfig `yaml:"scraping"`
}

type AppConfig struct {
	Name       string `yaml:"name"`
	Env        string `yaml:"env"`
	Debug      bool   `yaml:"debug"`
	Port       int    `yaml:"port"`
	OutputFile string `yaml:"output_file"`
}

type ScrapingConfig struct {
	RinggitPlus RinggitPlusConfig `yaml:"ringgitplus"`
}

type RinggitPlusConfig struct {
	BaseURL        string                     `yaml:"base_url"`
	Endpoints      map[string]string          `yaml:"endpoints"`
	UserAgent      string                     `yaml:"user_agent"`
	RequestTimeout time.Duration              `yaml:"request_timeout"`
	Banks          []string                   `yaml:"banks"`
	OnDetailError  domain.DetailFailurePolicy `yaml:"on_detail_error"`
}

// CashbackPath is the listing endpoint, relative to BaseURL.
func (c RinggitPlusConfig) CashbackPath() string {
	return c.Endpoints["cashback"]
}

// Default is used for anything the config files leave out.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:       "credit-card-crawler",
			Env:        "dev",
			Port:       8080,
			OutputFile: "credit_card_data.xlsx",
		},
		Scraping: ScrapingConfig{
			RinggitPlus: RinggitPlusConfig{
				BaseURL: "https://ringgitplus.com",
				Endpoints: map[string]string{
					"cashback": "/en/credit-card/cashback/",
				},
				Banks: []string{
					"AEON", "Affin", "Alliance Bank", "Ambank", "BSN", "Bank Rakyat", "CIMB", "HSBC",
					"Hong Leong", "Maybank", "OCBC", "Public", "RHB", "Standard Chartered", "UOB",
				},
				OnDetailError: domain.DetailPartial,
			},
		},
	}
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultDir)
}

// LoadConfigFrom reads <dir>/app.yaml and <dir>/scraping.yaml over the
// defaults, then applies a .env file and CARDCRAWLER_* variables.
// Missing files are not an error.
func LoadConfigFrom(dir string) (*Config, error) {
	cfg := Default()

	if err := readYAML(filepath.Join(dir, "app.yaml"), cfg); err != nil {
		return nil, err
	}
	if err := readYAML(filepath.Join(dir, "scraping.yaml"), &cfg.Scraping); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("CARDCRAWLER_OUTPUT"); ok {
		cfg.App.OutputFile = v
	}
	if v, ok := os.LookupEnv("CARDCRAWLER_BASE_URL"); ok {
		cfg.Scraping.RinggitPlus.BaseURL = v
	}
	if v, ok := os.LookupEnv("CARDCRAWLER_ON_DETAIL_ERROR"); ok {
		cfg.Scraping.RinggitPlus.OnDetailError = domain.DetailFailurePolicy(v)
	}
	if v, ok := os.LookupEnv("CARDCRAWLER_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CARDCRAWLER_PORT: %w", err)
		}
		cfg.App.Port = port
	}
	if v, ok := os.LookupEnv("CARDCRAWLER_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CARDCRAWLER_DEBUG: %w", err)
		}
		cfg.App.Debug = debug
	}
	return nil
}

func (c *Config) Validate() error {
	rp := c.Scraping.RinggitPlus
	if !rp.OnDetailError.Valid() {
		return fmt.Errorf("unknown on_detail_error %q (want abort, skip or partial)", rp.OnDetailError)
	}
	u, err := url.Parse(rp.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q", rp.BaseURL)
	}
	if rp.CashbackPath() == "" {
		return errors.New("missing endpoints.cashback")
	}
	for i, bank := range rp.Banks {
		if bank == "" {
			return fmt.Errorf("banks[%d] is empty", i)
		}
	}
	if c.App.OutputFile == "" {
		return errors.New("missing app.output_file")
	}
	return nil
}
