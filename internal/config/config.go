package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"autoready/internal/domain"
)

type Config struct {
	InputPath       string   `yaml:"input_path"`
	ResultsPath     string   `yaml:"results_path"`
	ReportOutputDir string   `yaml:"report_output_dir"`
	TemplatePath    string   `yaml:"template_path"`
	DBPath          string   `yaml:"db_path"`
	FocusMetrics    []string `yaml:"focus_metrics"`
	Explanation     string   `yaml:"explanation"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	LLMModel        string `yaml:"llm_model"`

	SlackBotToken   string `yaml:"slack_bot_token"`
	ReportChannelID string `yaml:"report_channel_id"`

	Schedule string `yaml:"schedule"`
	Timezone string `yaml:"timezone"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.InputPath, "INPUT_PATH")
	envOverride(&cfg.ResultsPath, "RESULTS_PATH")
	envOverride(&cfg.ReportOutputDir, "REPORT_OUTPUT_DIR")
	envOverride(&cfg.TemplatePath, "TEMPLATE_PATH")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.Explanation, "EXPLANATION")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.ReportChannelID, "REPORT_CHANNEL_ID")
	envOverride(&cfg.Schedule, "SCHEDULE")
	envOverride(&cfg.Timezone, "TIMEZONE")

	if keys := os.Getenv("FOCUS_METRICS"); keys != "" {
		cfg.FocusMetrics = nil
		for _, key := range strings.Split(keys, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				cfg.FocusMetrics = append(cfg.FocusMetrics, key)
			}
		}
	}

	// Defaults
	if cfg.ResultsPath == "" {
		cfg.ResultsPath = "./output/results_data.json"
	}
	if cfg.ReportOutputDir == "" {
		cfg.ReportOutputDir = "./output"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./autoready.db"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	// Validate required fields
	if cfg.InputPath == "" {
		log.Fatalf("Required config 'input_path' is not set (via config.yaml or env var)")
	}
	for _, key := range cfg.FocusMetrics {
		if _, err := domain.ParseMetricKey(key); err != nil {
			log.Fatalf("invalid focus_metrics entry: %v", err)
		}
	}
	if cfg.SlackBotToken != "" && cfg.ReportChannelID == "" {
		log.Fatalf("report_channel_id is required when slack_bot_token is set")
	}
	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			log.Fatalf("invalid schedule '%s': %v", cfg.Schedule, err)
		}
	}

	if strings.EqualFold(cfg.Timezone, "Local") {
		cfg.Timezone = time.Local.String()
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		time.Local = loc
	}

	return cfg
}

// FocusKeys converts the configured focus metric names. An empty selection
// means all metrics.
func (c Config) FocusKeys() []domain.MetricKey {
	if len(c.FocusMetrics) == 0 {
		return nil
	}
	keys := make([]domain.MetricKey, 0, len(c.FocusMetrics))
	for _, s := range c.FocusMetrics {
		k, err := domain.ParseMetricKey(s)
		if err != nil {
			continue // validated at load time
		}
		keys = append(keys, k)
	}
	return keys
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
