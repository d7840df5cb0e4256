package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

const (
	defaultPath      = "config.yaml"
	defaultListen    = ":8080"
	defaultMCPListen = ":8081"
	defaultTimeout   = 15 * time.Second
)

type Config struct {
	Server Server `yaml:"server"`
	Chat   Chat   `yaml:"chat"`
	MCP    MCP    `yaml:"mcp"`
	Log    Log    `yaml:"log"`
}

type Server struct {
	// Address the HTTP API listens on
	Listen string `yaml:"listen" example:":8080" validate:"required"`
	// Directory with the built front-end, served on / when set
	StaticDir string `yaml:"static_dir" example:"./web/dist"`
	// Origins allowed by CORS, comma separated
	CORSOrigins string `yaml:"cors_origins" example:"http://localhost:5173,https://pmdconsulting.com"`
	// Read timeout of the HTTP server
	ReadTimeout time.Duration `yaml:"read_timeout" example:"15s" validate:"gt=0"`
	// Write timeout of the HTTP server
	WriteTimeout time.Duration `yaml:"write_timeout" example:"15s" validate:"gt=0"`
}

type Chat struct {
	// Delay before the assistant answer is returned, mimics typing. Zero disables it
	ReplyDelay time.Duration `yaml:"reply_delay" example:"1s" validate:"gte=0"`
}

type MCP struct {
	// Expose the assistant as an MCP server
	Enabled bool `yaml:"enabled" example:"false"`
	// Address of the streamable HTTP MCP endpoint
	Listen string `yaml:"listen" example:":8081" validate:"required_if=Enabled true"`
}

type Log struct {
	// Minimal level: debug, info, warn, error
	Level string `yaml:"level" example:"info" validate:"oneof=debug info warn error"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890" validate:"required_with=Token"`
}

// Load reads the config from PMDSITE_CONFIG or ./config.yaml.
func Load() (*Config, error) {
	path := os.Getenv("PMDSITE_CONFIG")
	if path == "" {
		path = defaultPath
	}

	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.With("path", path).Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var result Config

	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	result.applyDefaults()

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = defaultListen
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultTimeout
	}
	if c.MCP.Listen == "" {
		c.MCP.Listen = defaultMCPListen
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
