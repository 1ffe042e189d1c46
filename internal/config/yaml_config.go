package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Display texts are easier to edit in YAML than in env vars.
type YAMLConfig struct {
	Site SiteConfig `yaml:"site"`
	UI   UIConfig   `yaml:"ui"`
	Form FormConfig `yaml:"form"`
}

// SiteConfig overrides branding.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Footer  string `yaml:"footer"`
	LogoURL string `yaml:"logo_url"`
}

// UIConfig overrides the chat page texts.
type UIConfig struct {
	Instruction string `yaml:"instruction"`
	Greeting    string `yaml:"greeting"`
	HistorySize int    `yaml:"history_size"`
}

// FormConfig overrides the application form.
type FormConfig struct {
	WebsiteURL string `yaml:"website_url"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply copies every non-empty YAML value over c. A nil receiver is a no-op.
func (y *YAMLConfig) Apply(c *Config) {
	if y == nil {
		return
	}
	setIf(&c.SiteTitle, y.Site.Title)
	setIf(&c.SiteTagline, y.Site.Tagline)
	setIf(&c.SiteFooter, y.Site.Footer)
	setIf(&c.SiteLogoURL, y.Site.LogoURL)
	setIf(&c.Instruction, y.UI.Instruction)
	setIf(&c.GreetingMessage, y.UI.Greeting)
	setIf(&c.FormWebsiteURL, y.Form.WebsiteURL)
	if y.UI.HistorySize > 0 {
		c.HistorySize = y.UI.HistorySize
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
