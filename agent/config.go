package agent

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultModel is used when the configuration does not name one.
	DefaultModel = "claude-sonnet-4-5"
	// DefaultMaxTokens limits the model response size.
	DefaultMaxTokens = 1024
	// DefaultMaxTurns bounds the tool loop.
	DefaultMaxTurns = 10
)

// Config describes the model driving the agent.
type Config struct {
	// APIKey specifies the Anthropic API key.
	APIKey string `json:"api_key" yaml:"api_key" validate:"required"`
	// Model specifies the model name.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	// MaxTokens specifies the maximum number of tokens per response.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	// MaxTurns specifies the maximum number of model calls per Run.
	MaxTurns int `json:"max_turns,omitempty" yaml:"max_turns,omitempty"`
	// SystemPrompt is prepended to every conversation.
	SystemPrompt string `json:"system_prompt,omitempty" yaml:"system_prompt,omitempty"`
}

var validate = validator.New()

func (c *Config) withDefaults() (*Config, error) {
	if err := validate.Struct(c); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	cfg := *c
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	return &cfg, nil
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
