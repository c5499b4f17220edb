// Package validation validates structs with go-playground/validator tags and
// reports failures as VALIDATION_ERROR application errors.
//
//	type Config struct {
//	    Name  string  `mapstructure:"name" validate:"required"`
//	    Ratio float64 `mapstructure:"ratio" validate:"min=0,max=1"`
//	}
//	err := validation.Validate(cfg)
//
// Field paths in error details use mapstructure tag names joined by dots,
// matching the keys a user writes in config.yml.
package validation
