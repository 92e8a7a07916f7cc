package config

import (
	"github.com/pkg/errors"
	"github.com/viant/tagly/format/text"
)

const defaultMetricName = "vpath"

//Config represents path resolution config
type Config struct {
	URL            string `json:",omitempty" yaml:",omitempty"`
	CaseFormat     string `json:",omitempty" yaml:",omitempty"`
	//DisableGetters excludes getter methods from accessor classification
	DisableGetters bool   `json:",omitempty" yaml:",omitempty"`
	Positional     bool   `json:",omitempty" yaml:",omitempty"`
	Debug          bool   `json:",omitempty" yaml:",omitempty"`
	MetricName     string `json:",omitempty" yaml:",omitempty"`
}

//Init initialises defaults
func (c *Config) Init() {
	if c.MetricName == "" {
		c.MetricName = defaultMetricName
	}
}

//Validate checks if config is valid
func (c *Config) Validate() error {
	if c.CaseFormat != "" && !text.NewCaseFormat(c.CaseFormat).IsDefined() {
		return errors.Errorf("unsupported CaseFormat: %v", c.CaseFormat)
	}
	return nil
}

//UseGetters returns true if getter methods can be used as accessors
func (c *Config) UseGetters() bool {
	return !c.DisableGetters
}

//KeyCaseFormat returns configured path key case format, undefined format enables per key detection
func (c *Config) KeyCaseFormat() text.CaseFormat {
	return text.NewCaseFormat(c.CaseFormat)
}

//New creates default config
func New() *Config {
	cfg := &Config{}
	cfg.Init()
	return cfg
}
