package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigFile = ".topicgraph.yaml"
	DefaultOutputPath = "graph.json"
	DefaultServeAddr  = ":8000"

	ModeConcept   = "concept"
	ModeReasoning = "reasoning"
)

// Config holds the configuration for the application.
type Config struct {
	LogLevel     string         `mapstructure:"log_level" yaml:"log_level"`
	OpenAI       OpenAIConfig   `mapstructure:"openai" yaml:"openai"`
	Generate     GenerateConfig `mapstructure:"generate" yaml:"generate"`
	Serve        ServeConfig    `mapstructure:"serve" yaml:"serve"`
	OpenAIAPIKey string         `mapstructure:"openai_api_key" yaml:"-"`
}

type OpenAIConfig struct {
	Model            string  `mapstructure:"model" yaml:"model"`
	BaseURL          string  `mapstructure:"base_url" yaml:"base_url"` // OpenAI-compatible endpoint
	Temperature      float64 `mapstructure:"temperature" yaml:"temperature"`
	StructuredOutput bool    `mapstructure:"structured_output" yaml:"structured_output"`
}

type GenerateConfig struct {
	OutputPath   string `mapstructure:"output_path" yaml:"output_path"`
	Mode         string `mapstructure:"mode" yaml:"mode"` // concept or reasoning
	DefaultTopic string `mapstructure:"default_topic" yaml:"default_topic"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default returns the configuration used when no file or env overrides it.
func Default() Config {
	return Config{
		LogLevel: "info",
		OpenAI: OpenAIConfig{
			Model:            "gpt-4o-mini",
			Temperature:      0.2,
			StructuredOutput: true,
		},
		Generate: GenerateConfig{
			OutputPath: DefaultOutputPath,
			Mode:       ModeConcept,
		},
		Serve: ServeConfig{
			Addr: DefaultServeAddr,
		},
	}
}

func (c Config) Validate() error {
	switch c.Generate.Mode {
	case ModeConcept, ModeReasoning:
	default:
		return fmt.Errorf("generate.mode must be %q or %q, got %q", ModeConcept, ModeReasoning, c.Generate.Mode)
	}
	if c.Generate.OutputPath == "" {
		return fmt.Errorf("generate.output_path is required")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be within [0,2], got %v", c.OpenAI.Temperature)
	}
	return nil
}

// Load reads YAML configuration from reader (which may be nil) and applies
// environment overrides. OPENAI_API_KEY and OPENAI_BASE_URL are honored as is;
// every other key can be set with a TOPICGRAPH_ prefix, e.g.
// TOPICGRAPH_GENERATE_OUTPUT_PATH.
func Load(reader io.Reader) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	v.SetEnvPrefix("TOPICGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind environment variables
	if err := v.BindEnv("openai_api_key", "OPENAI_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("failed to bind environment variable: %w", err)
	}
	if err := v.BindEnv("openai.base_url", "TOPICGRAPH_OPENAI_BASE_URL", "OPENAI_BASE_URL"); err != nil {
		return Config{}, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	if reader != nil {
		if err := v.ReadConfig(reader); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.OpenAIAPIKey = strings.TrimSpace(v.GetString("openai_api_key"))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("openai.model", d.OpenAI.Model)
	v.SetDefault("openai.base_url", d.OpenAI.BaseURL)
	v.SetDefault("openai.temperature", d.OpenAI.Temperature)
	v.SetDefault("openai.structured_output", d.OpenAI.StructuredOutput)
	v.SetDefault("generate.output_path", d.Generate.OutputPath)
	v.SetDefault("generate.mode", d.Generate.Mode)
	v.SetDefault("generate.default_topic", d.Generate.DefaultTopic)
	v.SetDefault("serve.addr", d.Serve.Addr)
	v.SetDefault("openai_api_key", "")
}

// cfg holds the configuration loaded by InitConfig.
var cfg = Default()

// InitConfig loads the configuration and keeps it for GetConfig.
func InitConfig(reader io.Reader) error {
	loaded, err := Load(reader)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() Config {
	return cfg
}

// SetLogLevel overrides the loaded log level, e.g. from a command line flag.
func SetLogLevel(level string) {
	cfg.LogLevel = level
}

// CreateDefaultConfigFile writes the default configuration as YAML.
// The API key is never written.
func CreateDefaultConfigFile(w io.Writer) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}
