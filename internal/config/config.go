package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Verify   VerifyConfig
	Pipeline PipelineConfig
	Scanner  ScannerConfig
	Assessor AssessorConfig
	Outreach OutreachConfig
	Output   OutputConfig
	// ExcludeKeywords overrides the built-in exclusion list when set.
	ExcludeKeywords []string
}

type VerifyConfig struct {
	Timeout     time.Duration
	Retries     int
	RetryDelay  time.Duration
	RequireDNS  bool
	RequireHTTP bool
	RateLimit   float64
}

type PipelineConfig struct {
	Workers       int
	GuessFallback bool
	EnableOSINT   bool
}

type ScannerConfig struct {
	Enabled bool
	Binary  string
	Timeout time.Duration
}

type AssessorConfig struct {
	Enabled bool
	Command string
	Timeout time.Duration
}

type OutreachConfig struct {
	SenderName  string
	SenderPhone string
	SenderEmail string
}

type OutputConfig struct {
	Dir     string
	DataDir string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvPrefix("PROSPECT")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("verify.timeout", "5s")
	viper.SetDefault("verify.retries", 2)
	viper.SetDefault("verify.retrydelay", "500ms")
	viper.SetDefault("verify.requiredns", true)
	viper.SetDefault("verify.requirehttp", true)
	viper.SetDefault("verify.ratelimit", 0)
	viper.SetDefault("pipeline.workers", 1)
	viper.SetDefault("pipeline.guessfallback", true)
	viper.SetDefault("pipeline.enableosint", false)
	viper.SetDefault("scanner.enabled", false)
	viper.SetDefault("scanner.binary", "wpscan")
	viper.SetDefault("scanner.timeout", "30s")
	viper.SetDefault("assessor.enabled", false)
	viper.SetDefault("assessor.timeout", "10s")
	viper.SetDefault("outreach.sendername", "Sales Team")
	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.datadir", "business_data")

	var cfg Config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Override with environment variables
	if dir := os.Getenv("PROSPECT_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if dir := os.Getenv("PROSPECT_DATA_DIR"); dir != "" {
		cfg.Output.DataDir = dir
	}
	if cmd := os.Getenv("PROSPECT_ASSESSOR_COMMAND"); cmd != "" {
		cfg.Assessor.Command = cmd
		cfg.Assessor.Enabled = true
	}

	return &cfg, nil
}
