package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	ScratchLocal = "local"
	ScratchMinio = "minio"
)

type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		IdleTimeout  time.Duration `yaml:"idleTimeout"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	Provider struct {
		Kind    string `yaml:"kind"`
		APIKey  string `yaml:"apiKey"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"provider"`

	Analysis struct {
		Temperature float32           `yaml:"temperature"`
		DemoDelay   time.Duration     `yaml:"demoDelay"`
		Models      []ai.ModelAttempt `yaml:"models"`
	} `yaml:"analysis"`

	Video struct {
		Model          string        `yaml:"model"`
		PollInterval   time.Duration `yaml:"pollInterval"`
		MaxWait        time.Duration `yaml:"maxWait"`
		DemoDelay      time.Duration `yaml:"demoDelay"`
		MaxUploadBytes int64         `yaml:"maxUploadBytes"`
	} `yaml:"video"`

	Visual struct {
		Model       string `yaml:"model"`
		AspectRatio string `yaml:"aspectRatio"`
	} `yaml:"visual"`

	Scratch struct {
		Backend string `yaml:"backend"`
		Dir     string `yaml:"dir"`
		Minio   struct {
			Endpoint   string `yaml:"endpoint"`
			AccessKey  string `yaml:"accessKey"`
			SecretKey  string `yaml:"secretKey"`
			BucketName string `yaml:"bucketName"`
			Region     string `yaml:"region"`
			UseSSL     bool   `yaml:"useSSL"`
		} `yaml:"minio"`
	} `yaml:"scratch"`
}

// GeminiModels is the default cascade, strongest first.
var GeminiModels = []ai.ModelAttempt{
	{Model: "gemini-3-pro-preview", ThinkingBudget: 24000, Label: "Gemini 3 Pro (Extended Reasoning)"},
	{Model: "gemini-3-flash-preview", ThinkingBudget: 12000, Label: "Gemini 3 Flash (Fast Analysis)"},
	{Model: "gemini-1.5-pro-latest", ThinkingBudget: 8000, Label: "Gemini 1.5 Pro (Fallback)"},
	{Model: "gemini-1.5-flash-latest", ThinkingBudget: 0, Label: "Gemini 1.5 Flash (Basic)"},
}

// OpenAIModels is the cascade used when provider.kind is openai and the file
// names no models.
var OpenAIModels = []ai.ModelAttempt{
	{Model: "o3", ThinkingBudget: 16000, Label: "OpenAI o3 (Reasoning)"},
	{Model: "o4-mini", ThinkingBudget: 8000, Label: "OpenAI o4-mini (Fast Reasoning)"},
	{Model: "gpt-4o", ThinkingBudget: 0, Label: "GPT-4o (Fallback)"},
}

// Default returns the built-in configuration.
func Default() *Config {
	var c Config
	c.Server.Port = 8000
	c.Server.ReadTimeout = 30 * time.Second
	// video analysis can poll for minutes before answering
	c.Server.WriteTimeout = 15 * time.Minute
	c.Server.IdleTimeout = 60 * time.Second

	c.CORS.AllowedOrigins = []string{"*"}
	c.Log.Level = "info"

	c.Provider.Kind = ProviderGemini

	c.Analysis.Temperature = 0.7
	c.Analysis.DemoDelay = 1500 * time.Millisecond

	c.Video.Model = "gemini-3-pro-preview"
	c.Video.PollInterval = 2 * time.Second
	c.Video.MaxWait = 10 * time.Minute
	c.Video.DemoDelay = 3 * time.Second
	c.Video.MaxUploadBytes = 512 << 20

	c.Visual.Model = "imagen-4.0-generate-preview"
	c.Visual.AspectRatio = "16:9"

	c.Scratch.Backend = ScratchLocal
	return &c
}

// Load baca .env lalu config.yaml di atas default. File yang tidak ada
// bukan error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.fill()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PROVIDER"); ok && v != "" {
		c.Provider.Kind = strings.ToLower(strings.TrimSpace(v))
	}
	keyVar := "GEMINI_API_KEY"
	if c.Provider.Kind == ProviderOpenAI {
		keyVar = "OPENAI_API_KEY"
	}
	if v, ok := lookup(keyVar); ok && v != "" {
		c.Provider.APIKey = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("SCRATCH_DIR"); ok && v != "" {
		c.Scratch.Dir = v
	}
	return nil
}

// fill picks the provider's default cascade and models when the file left
// them empty. Unlabelled attempts are labelled with their model name.
func (c *Config) fill() {
	defer func() {
		for i := range c.Analysis.Models {
			if c.Analysis.Models[i].Label == "" {
				c.Analysis.Models[i].Label = c.Analysis.Models[i].Model
			}
		}
	}()
	if len(c.Analysis.Models) > 0 {
		return
	}
	switch c.Provider.Kind {
	case ProviderOpenAI:
		c.Analysis.Models = append([]ai.ModelAttempt(nil), OpenAIModels...)
		if c.Video.Model == Default().Video.Model {
			c.Video.Model = "gpt-4o"
		}
		if c.Visual.Model == Default().Visual.Model {
			c.Visual.Model = "dall-e-3"
		}
	default:
		c.Analysis.Models = append([]ai.ModelAttempt(nil), GeminiModels...)
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Provider.Kind {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider kind %q", c.Provider.Kind)
	}
	switch c.Scratch.Backend {
	case ScratchLocal:
	case ScratchMinio:
		if c.Scratch.Minio.Endpoint == "" || c.Scratch.Minio.BucketName == "" {
			return errors.New("scratch.minio needs endpoint and bucketName")
		}
	default:
		return fmt.Errorf("unknown scratch backend %q", c.Scratch.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	for i, m := range c.Analysis.Models {
		if m.Model == "" {
			return fmt.Errorf("analysis.models[%d]: model is required", i)
		}
		if m.ThinkingBudget < 0 {
			return fmt.Errorf("analysis.models[%d]: negative thinkingBudget", i)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
