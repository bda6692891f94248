package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Planner specifics
	Planner PlannerConfig
	Store   StoreConfig
	Redis   RedisConfig
	Speech  SpeechConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// PlannerConfig holds the schedule domain settings.
type PlannerConfig struct {
	// Timezone is an IANA name used to date parsed clock times. Empty means the process local zone.
	Timezone             string
	ResetPassword        string
	MaxAudioBytes        int64
	ResetRateLimitPerMin int
}

// Schedule state backends.
const (
	StoreDriverMemory = "memory"
	StoreDriverRedis  = "redis"
)

// StoreConfig selects the schedule state backend.
type StoreConfig struct {
	Driver string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// SpeechConfig selects and configures the transcriber: "groq" or "google".
type SpeechConfig struct {
	Provider string
	Groq     GroqSpeechConfig
	Google   GoogleSpeechConfig
}

type GroqSpeechConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
}

type GoogleSpeechConfig struct {
	CredentialsPath string
	LanguageCode    string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from path, or from the default search paths when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))

	// Planner
	cfg.Planner.Timezone = v.GetString("planner.timezone")
	cfg.Planner.ResetPassword = expandEnvVar(v, v.GetString("planner.reset_password"))
	cfg.Planner.MaxAudioBytes = v.GetInt64("planner.max_audio_bytes")
	cfg.Planner.ResetRateLimitPerMin = v.GetInt("planner.reset_rate_limit_per_min")

	// State store
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(v, v.GetString("redis.password"))
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.Key = v.GetString("redis.key")

	// Speech
	cfg.Speech.Provider = strings.ToLower(v.GetString("speech.provider"))
	cfg.Speech.Groq.APIKey = expandEnvVar(v, v.GetString("speech.groq.api_key"))
	cfg.Speech.Groq.BaseURL = v.GetString("speech.groq.base_url")
	cfg.Speech.Groq.Model = v.GetString("speech.groq.model")
	cfg.Speech.Groq.Language = v.GetString("speech.groq.language")
	cfg.Speech.Google.CredentialsPath = expandEnvVar(v, v.GetString("speech.google.credentials_path"))
	cfg.Speech.Google.LanguageCode = v.GetString("speech.google.language_code")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Without a providers section fall back to Groq, keyed by GROQ_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "groq",
			Enabled:  true,
			Priority: 1,
			APIKey:   expandEnvVar(v, "${GROQ_API_KEY}"),
			Model:    "llama-3.1-8b-instant",
		}}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Planner defaults
	v.SetDefault("planner.reset_password", "hackathon")
	v.SetDefault("planner.max_audio_bytes", 25<<20)
	v.SetDefault("planner.reset_rate_limit_per_min", 10)
	v.SetDefault("store.driver", StoreDriverMemory)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key", "planner:schedule:state")

	// Speech defaults
	v.SetDefault("speech.provider", "groq")
	v.SetDefault("speech.groq.api_key", "${GROQ_API_KEY}")
	v.SetDefault("speech.groq.model", "whisper-large-v3")
	v.SetDefault("speech.google.language_code", "en-US")

	// LLM defaults: one attempt per provider
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis:
	default:
		return fmt.Errorf("store.driver must be memory or redis, got %q", cfg.Store.Driver)
	}
	switch cfg.Speech.Provider {
	case "groq", "google":
	default:
		return fmt.Errorf("speech.provider must be groq or google, got %q", cfg.Speech.Provider)
	}
	if cfg.Planner.ResetPassword == "" {
		return fmt.Errorf("planner.reset_password must not be empty")
	}
	if cfg.Planner.MaxAudioBytes <= 0 {
		return fmt.Errorf("planner.max_audio_bytes must be positive")
	}
	return validateLLMConfig(&cfg.LLM)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("llm.retry_attempts must be at least 1")
	}

	return nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
