package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"jiractl/internal/domain"
)

// FileNames lists the configuration file names looked up in each directory, in order
var FileNames = []string{".jirarc", ".jirarc.json", ".jirarc.toml", ".jirarc.yaml", ".jirarc.yml"}

// Defaults applied before the file is decoded
const (
	DefaultAPIVersion = "2"
	DefaultProtocol   = "https"
)

// Config represents the content of a .jirarc file
type Config struct {
	APIVersion      string `json:"apiVersion,omitempty" toml:"apiVersion,omitempty" yaml:"apiVersion,omitempty" validate:"omitempty,eq=2"`
	Base            string `json:"base,omitempty" toml:"base,omitempty" yaml:"base,omitempty"`
	CopyToClipboard bool   `json:"copyToClipboard" toml:"copyToClipboard" yaml:"copyToClipboard"`
	DefaultBoard    int    `json:"defaultBoard,omitempty" toml:"defaultBoard,omitempty" yaml:"defaultBoard,omitempty" validate:"gte=0"`
	Host            string `json:"host" toml:"host" yaml:"host" validate:"required"`
	Locale          string `json:"locale,omitempty" toml:"locale,omitempty" yaml:"locale,omitempty"`
	Password        string `json:"password,omitempty" toml:"password,omitempty" yaml:"password,omitempty"`
	Port            int    `json:"port,omitempty" toml:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	Protocol        string `json:"protocol,omitempty" toml:"protocol,omitempty" yaml:"protocol,omitempty" validate:"omitempty,oneof=http https"`
	StrictSSL       bool   `json:"strictSSL" toml:"strictSSL" yaml:"strictSSL"`
	Timeout         int    `json:"timeout,omitempty" toml:"timeout,omitempty" yaml:"timeout,omitempty" validate:"gte=0"` // Seconds, 0 disables it
	Token           string `json:"token,omitempty" toml:"token,omitempty" yaml:"token,omitempty"`
	Username        string `json:"username,omitempty" toml:"username,omitempty" yaml:"username,omitempty"`
}

// NewDefaultConfig returns the values used for keys missing from the file
func NewDefaultConfig() *Config {
	return &Config{
		APIVersion:      DefaultAPIVersion,
		CopyToClipboard: true,
		Protocol:        DefaultProtocol,
	}
}

// Find looks for a configuration file in dir and then in each parent directory.
// It returns domain.ErrConfigNotFound when none exists up to the filesystem root.
func Find(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrConfigNotFound, err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(current, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: no %s file in %s or its parents", domain.ErrConfigNotFound, FileNames[0], dir)
		}
		current = parent
	}
}

// Load reads, decodes and validates the configuration file at path.
// A missing file yields domain.ErrConfigNotFound, anything unreadable or
// incomplete yields domain.ErrConfigInvalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrConfigInvalid, err)
	}

	cfg := NewDefaultConfig()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", domain.ErrConfigInvalid, path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfigInvalid, path, err)
	}

	return cfg, nil
}

// LoadFromDir finds the closest configuration file from dir and loads it
func LoadFromDir(dir string) (*Config, string, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// decode picks the format from the file extension. A bare .jirarc is JSON.
// Values are applied with weak typing so "port": "8443" and "apiVersion": 2
// are accepted like the Jira clients reading the same files do.
func decode(path string, data []byte, cfg *Config) error {
	raw := map[string]any{}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// applyEnvOverrides lets secrets live outside the file
func applyEnvOverrides(cfg *Config) {
	if password := os.Getenv("JIRACTL_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if token := os.Getenv("JIRACTL_TOKEN"); token != "" {
		cfg.Token = token
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the names used in the file rather than the Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param()))
		case "eq":
			messages = append(messages, fmt.Sprintf("%s must be %s", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	return errors.New(strings.Join(messages, ", "))
}

// BaseURL returns protocol://host[:port]. Default ports are left out.
func (c *Config) BaseURL() string {
	protocol := c.Protocol
	if protocol == "" {
		protocol = DefaultProtocol
	}

	host := strings.TrimSuffix(c.Host, "/")
	if c.Port != 0 && c.Port != 80 && c.Port != 443 {
		host += ":" + strconv.Itoa(c.Port)
	}
	return protocol + "://" + host
}

// APIURL returns the root the REST API is served from, including the base path
func (c *Config) APIURL() string {
	base := strings.Trim(c.Base, "/")
	if base == "" {
		return c.BaseURL() + "/"
	}
	return c.BaseURL() + "/" + base + "/"
}

// BrowseURL returns the web URL of a ticket
func (c *Config) BrowseURL(ticketID string) string {
	return c.BaseURL() + "/browse/" + ticketID
}
