package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var flagNames = map[string]string{
	"Host":            "host",
	"Concurrency":     "concurrency",
	"LogLevel":        "log-level",
	"CredentialsFile": "credentials",
}

var fieldHints = map[string]string{
	"Host":            "must be a host name, optionally with a port",
	"Concurrency":     "must be between 1 and 64",
	"LogLevel":        "must be one of debug, info, warn, error, none",
	"CredentialsFile": "cannot be empty",
}

// ValidateConfig validates the application configuration.
func ValidateConfig(cfg *AppConfig) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	f := verrs[0].StructField()
	return fmt.Errorf("argument '%s' is not valid, %s", flagNames[f], fieldHints[f])
}
