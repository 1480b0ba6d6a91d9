// Package faxplus implements a client for the Fax.Plus REST API,
// covering the operations the fax tools consume: file upload, fax
// submission, status lookup and history listing.
package faxplus

import (
	"net/http"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBaseURL is the Fax.Plus REST API endpoint.
	DefaultBaseURL = "https://restapi.fax.plus/v3"

	// EnvAccessToken is the environment variable with the API access token.
	EnvAccessToken = "FAXPLUS_ACCESS_TOKEN"
	// EnvUserID is the environment variable with the account user ID.
	EnvUserID = "FAXPLUS_USER_ID"
)

// Config provides the credentials and endpoint for the Fax.Plus API.
type Config struct {
	// AccessToken specifies the API access token.
	AccessToken string `json:"access_token" yaml:"access_token" validate:"required"`
	// UserID specifies the account user ID that owns the faxes.
	UserID string `json:"user_id" yaml:"user_id" validate:"required"`
	// BaseURL overrides the API endpoint, mostly for tests.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// ConfigFromEnv loads the client configuration from the process environment.
func ConfigFromEnv() (*Config, error) {
	token := os.Getenv(EnvAccessToken)
	if token == "" {
		return nil, errors.Errorf("%s is not set", EnvAccessToken)
	}
	userID := os.Getenv(EnvUserID)
	if userID == "" {
		return nil, errors.Errorf("%s is not set", EnvUserID)
	}
	return &Config{
		AccessToken: token,
		UserID:      userID,
	}, nil
}

// Doer performs a HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Fax.Plus API.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient Doer
}

var validate = validator.New()

// NewClient returns a new Fax.Plus client.
func NewClient(cfg *Config) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	c := &Client{
		cfg:        *cfg,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: http.DefaultClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	return c, nil
}

// WithHTTPClient sets the HTTP client used for API requests.
func (c *Client) WithHTTPClient(client Doer) *Client {
	c.httpClient = client
	return c
}

// WithBaseURL overrides the API endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// UserID returns the configured account user ID.
func (c *Client) UserID() string {
	return c.cfg.UserID
}
