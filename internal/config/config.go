// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Policy PolicyConfig `yaml:"policy" mapstructure:"policy"`
	Demo   DemoConfig   `yaml:"demo" mapstructure:"demo"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Chart  ChartConfig  `yaml:"chart" mapstructure:"chart"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// PolicyConfig holds the scoring policy: per-check weights, pass thresholds,
// and the status bands derived from the total score.
type PolicyConfig struct {
	// Weights, one per check (sum = 100 with defaults).
	KYCWeight        int `yaml:"kyc_weight" mapstructure:"kyc_weight"`
	CapitalWeight    int `yaml:"capital_weight" mapstructure:"capital_weight"`
	ComplaintsWeight int `yaml:"complaints_weight" mapstructure:"complaints_weight"`
	DelayWeight      int `yaml:"delay_weight" mapstructure:"delay_weight"`
	BreachWeight     int `yaml:"breach_weight" mapstructure:"breach_weight"`

	// Pass thresholds.
	MinCapitalAdequacyPct float64 `yaml:"min_capital_adequacy_pct" mapstructure:"min_capital_adequacy_pct"`
	MaxClientComplaints   int     `yaml:"max_client_complaints" mapstructure:"max_client_complaints"`
	MaxReportingDelayDays float64 `yaml:"max_reporting_delay_days" mapstructure:"max_reporting_delay_days"`

	// Status bands over the total score.
	CompliantMin int `yaml:"compliant_min" mapstructure:"compliant_min"`
	AttentionMin int `yaml:"attention_min" mapstructure:"attention_min"`
}

// DemoConfig configures the built-in demo dataset.
type DemoConfig struct {
	Rows int `yaml:"rows" mapstructure:"rows"`
}

// ReportConfig configures the PDF report title block.
type ReportConfig struct {
	Title    string `yaml:"title" mapstructure:"title"`
	Subtitle string `yaml:"subtitle" mapstructure:"subtitle"`
}

// ChartConfig configures the score distribution chart.
type ChartConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	RatePerSecond  int      `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	TimeoutSecs    int      `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	ShutdownSecs   int      `yaml:"shutdown_secs" mapstructure:"shutdown_secs"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COMPLISCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("policy.kyc_weight", 20)
	v.SetDefault("policy.capital_weight", 20)
	v.SetDefault("policy.complaints_weight", 20)
	v.SetDefault("policy.delay_weight", 20)
	v.SetDefault("policy.breach_weight", 20)
	v.SetDefault("policy.min_capital_adequacy_pct", 100)
	v.SetDefault("policy.max_client_complaints", 2)
	v.SetDefault("policy.max_reporting_delay_days", 1)
	v.SetDefault("policy.compliant_min", 80)
	v.SetDefault("policy.attention_min", 50)
	v.SetDefault("demo.rows", 30)
	v.SetDefault("report.title", "CompliScore – Compliance Health Dashboard")
	v.SetDefault("report.subtitle", "Low-cost compliance monitoring for small and mid-sized brokers")
	v.SetDefault("chart.width", 1280)
	v.SetDefault("chart.height", 500)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.rate_per_second", 10)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.timeout_secs", 60)
	v.SetDefault("server.shutdown_secs", 10)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
