package config

import (
	"fmt"

	"github.com/kbukum/seqtrace/logger"
	"github.com/kbukum/seqtrace/observability"
	"github.com/kbukum/seqtrace/validation"
)

// Environments accepted by Config.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// DefaultLogLevel keeps a bare run quiet on stderr.
const DefaultLogLevel = "warn"

// Config is the configuration shared by the seqtrace commands.
type Config struct {
	Name        string               `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string               `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string               `yaml:"version" mapstructure:"version"`
	Debug       bool                 `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills unset fields. name is used when Name is empty.
func (c *Config) ApplyDefaults(name string) {
	if c.Name == "" {
		c.Name = name
	}
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
		if c.Debug {
			c.Logging.Level = "debug"
		}
	}
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults(c.Name, c.Environment)
}

// Validate checks struct tags first, then the nested logging rules.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
