package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/allen-go/allen/allen"
)

const (
	// AllenFolder app config folder name
	AllenFolder = "allen"
	// CredentialsFileName stores the form number and password saved by `allen reset`
	CredentialsFileName = "credentials.toml"

	// EnvToken ...
	EnvToken = "ALLEN_JWT"
	// EnvUsername ...
	EnvUsername = "ALLEN_USERNAME"
	// EnvPassword ...
	EnvPassword = "ALLEN_PASSWORD"
)

// AppConfig holds everything the command line front end needs.
type AppConfig struct {
	Username        string
	Password        string
	Token           string
	Host            string `validate:"required,hostname_port|hostname"`
	Insecure        bool
	Concurrency     int    `validate:"min=1,max=64"`
	LogLevel        string `validate:"oneof=debug info warn error none"`
	LogFile         string
	CredentialsFile string `validate:"required"`
}

// DefaultCredentialsFile returns <user config dir>/allen/credentials.toml
func DefaultCredentialsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, AllenFolder, CredentialsFileName)
}

// LoadEnv fills empty credential fields from the environment, reading a .env
// file in the working directory first when there is one.
func LoadEnv(cfg *AppConfig) {
	_ = godotenv.Load()

	if cfg.Token == "" {
		cfg.Token = os.Getenv(EnvToken)
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv(EnvUsername)
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv(EnvPassword)
	}
}

// Source tells where resolved credentials came from.
type Source int

const (
	// SourceNone means nothing was configured.
	SourceNone Source = iota
	// SourceFlags covers --jwt and the ALLEN_* variables, flags win over env.
	SourceFlags
	// SourceFile is the credentials file written by `allen reset`.
	SourceFile
)

// ResolveCredentials falls back to the credentials file when neither a token
// nor a username/password pair came from flags or the environment.
func ResolveCredentials(cfg *AppConfig) (allen.Credentials, Source, error) {
	if cfg.Token != "" || (cfg.Username != "" && cfg.Password != "") {
		return allen.Credentials{Username: cfg.Username, Password: cfg.Password, Token: cfg.Token}, SourceFlags, nil
	}
	stored, err := ReadCredentials(cfg.CredentialsFile)
	if err != nil {
		return allen.Credentials{}, SourceNone, err
	}
	if stored.Username == "" && stored.Password == "" {
		return allen.Credentials{}, SourceNone, nil
	}
	return allen.Credentials{Username: stored.Username, Password: stored.Password}, SourceFile, nil
}
