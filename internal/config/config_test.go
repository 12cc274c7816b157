package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *AppConfig {
	return &AppConfig{
		Host:            "ddcapi.allenbpms.in",
		Concurrency:     4,
		LogLevel:        "warn",
		CredentialsFile: filepath.Join(t.TempDir(), CredentialsFileName),
	}
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"Valid", func(*AppConfig) {}, ""},
		{"HostWithPort", func(c *AppConfig) { c.Host = "127.0.0.1:8080" }, ""},
		{"EmptyHost", func(c *AppConfig) { c.Host = "" }, "argument 'host' is not valid"},
		{"ZeroConcurrency", func(c *AppConfig) { c.Concurrency = 0 }, "argument 'concurrency' is not valid"},
		{"UnknownLogLevel", func(c *AppConfig) { c.LogLevel = "loud" }, "argument 'log-level' is not valid"},
		{"NoCredentialsFile", func(c *AppConfig) { c.CredentialsFile = "" }, "argument 'credentials' is not valid"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(cfg)
			err := ValidateConfig(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "env-pass")

	cfg := &AppConfig{Username: "flag-user"}
	LoadEnv(cfg)

	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "flag-user", cfg.Username)
	assert.Equal(t, "env-pass", cfg.Password)
}

func TestCredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), AllenFolder, CredentialsFileName)

	c, err := ReadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, StoredCredentials{}, c)

	want := StoredCredentials{Username: "21010001", Password: "s3cret"}
	require.NoError(t, WriteCredentials(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	c, err = ReadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, want, c)

	require.NoError(t, RemoveCredentials(path))
	require.NoError(t, RemoveCredentials(path))
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveCredentials(t *testing.T) {
	cfg := validConfig(t)

	creds, src, err := ResolveCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, SourceNone, src)
	assert.Empty(t, creds.Username)

	require.NoError(t, WriteCredentials(cfg.CredentialsFile, StoredCredentials{Username: "file-user", Password: "file-pass"}))

	creds, src, err = ResolveCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, src)
	assert.Equal(t, "file-user", creds.Username)

	cfg.Token = "jwt"
	creds, src, err = ResolveCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, SourceFlags, src)
	assert.Equal(t, "jwt", creds.Token)
	assert.Empty(t, creds.Username)

	cfg.Token = ""
	cfg.Username, cfg.Password = "u", "p"
	creds, src, err = ResolveCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, SourceFlags, src)
	assert.Equal(t, "u", creds.Username)
}
