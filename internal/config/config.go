// Package config loads service configuration from an optional YAML file
// with environment overrides layered on top. Zero configuration is a
// supported deployment: every field has a default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"resume-composer/internal/render"
)

// Environment variables recognized on top of the file config.
const (
	EnvConfigPath  = "RESUME_COMPOSER_CONFIG"
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvOpenAIModel = "OPENAI_MODEL"
	EnvPort        = "PORT"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Upload UploadConfig `yaml:"upload"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ModelSettings selects the model and sampling parameters for one kind of
// completion request.
type ModelSettings struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

type OpenAIConfig struct {
	APIKey            string        `yaml:"api_key"`
	BaseURL           string        `yaml:"base_url"`
	Parse             ModelSettings `yaml:"parse"`
	Optimize          ModelSettings `yaml:"optimize"`
	TimeoutSeconds    int           `yaml:"timeout_seconds"`
	MaxRetries        int           `yaml:"max_retries"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
}

func (c OpenAIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type UploadConfig struct {
	MaxBytes          int64    `yaml:"max_bytes"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// Allowed reports whether ext (with leading dot, any case) may be uploaded.
func (c UploadConfig) Allowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

type RenderConfig struct {
	MarginLeft   float64 `yaml:"margin_left"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginBottom float64 `yaml:"margin_bottom"`
	FontFamily   string  `yaml:"font_family"`
	TitleSize    float64 `yaml:"title_size"`
	HeadingSize  float64 `yaml:"heading_size"`
	BodySize     float64 `yaml:"body_size"`
	HeadingColor string  `yaml:"heading_color"`
}

// Style maps the file representation onto the renderer's style.
func (c RenderConfig) Style() (render.Style, error) {
	rgb, err := parseHexColor(c.HeadingColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("heading_color: %w", err)
	}
	return render.Style{
		MarginLeft:   c.MarginLeft,
		MarginTop:    c.MarginTop,
		MarginRight:  c.MarginRight,
		MarginBottom: c.MarginBottom,
		FontFamily:   c.FontFamily,
		TitleSize:    c.TitleSize,
		HeadingSize:  c.HeadingSize,
		BodySize:     c.BodySize,
		HeadingColor: rgb,
	}, nil
}

type LogConfig struct {
	Mode string `yaml:"mode"`
}

// Default returns the configuration the service ships with.
func Default() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000},
		OpenAI: OpenAIConfig{
			BaseURL:           "https://api.openai.com/v1",
			Parse:             ModelSettings{Model: "gpt-4.1-mini", MaxTokens: 2000, Temperature: 0.1},
			Optimize:          ModelSettings{Model: "gpt-4", MaxTokens: 3000, Temperature: 0.3},
			TimeoutSeconds:    60,
			MaxRetries:        3,
			RequestsPerMinute: 60,
		},
		Upload: UploadConfig{
			MaxBytes:          10 << 20,
			AllowedExtensions: []string{".pdf", ".docx"},
		},
		Render: RenderConfig{
			MarginLeft:   72,
			MarginTop:    72,
			MarginRight:  72,
			MarginBottom: 18,
			FontFamily:   "Helvetica",
			TitleSize:    24,
			HeadingSize:  14,
			BodySize:     11,
			HeadingColor: "#2c3e50",
		},
		Log: LogConfig{Mode: "development"},
	}
}

// Load builds the effective configuration: defaults, then the YAML file,
// then environment overrides. path may be empty; then the file named by
// RESUME_COMPOSER_CONFIG is used, falling back to ./config.yaml. A missing
// file is only an error when it was named explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// run on defaults
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if _, err := cfg.Render.Style(); err != nil {
		return Config{}, fmt.Errorf("render config: %w", err)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("server port %d out of range", cfg.Server.Port)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOpenAIKey); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv(EnvOpenAIModel); v != "" {
		c.OpenAI.Parse.Model = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
}

func parseHexColor(s string) (render.RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return render.RGB{}, fmt.Errorf("want RRGGBB, got %q", s)
	}
	var parts [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return render.RGB{}, fmt.Errorf("want RRGGBB, got %q", s)
		}
		parts[i] = int(v)
	}
	return render.RGB{R: parts[0], G: parts[1], B: parts[2]}, nil
}
