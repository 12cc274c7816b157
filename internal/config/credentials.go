package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2/maybe"
)

// StoredCredentials is the on-disk form of a saved login.
type StoredCredentials struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// ReadCredentials returns zero credentials when the file does not exist.
func ReadCredentials(path string) (StoredCredentials, error) {
	var c StoredCredentials
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StoredCredentials{}, nil
		}
		return StoredCredentials{}, err
	}
	return c, nil
}

// WriteCredentials replaces the credentials file atomically, readable by the owner only.
func WriteCredentials(path string, c StoredCredentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return maybe.WriteFile(path, buf.Bytes(), 0o600)
}

// RemoveCredentials deletes the credentials file if present.
func RemoveCredentials(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
