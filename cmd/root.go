package cmd

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"os/signal"
	"runtime"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/internal/config"
	"github.com/allen-go/allen/internal/loader"
	"github.com/allen-go/allen/internal/pkg/logger"
)

var (
	cfg       config.AppConfig
	l         *spinner.Spinner
	logCloser io.Closer
	// credentialsSource records where the credentials of the last login came from
	credentialsSource config.Source
)

var errNoCredentials = errors.New("no credentials found, pass --jwt, set ALLEN_USERNAME and ALLEN_PASSWORD, or run `allen reset`")

func init() {
	defaultConcurrency := int(math.Ceil(float64(runtime.NumCPU()) / 2.0))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Token, "jwt", "", "bearer token from a previous login, skips the login round trip")
	pf.StringVar(&cfg.Host, "host", allen.DefaultHost, "API host")
	pf.BoolVar(&cfg.Insecure, "insecure", false, "use plain HTTP")
	pf.IntVarP(&cfg.Concurrency, "concurrency", "c", defaultConcurrency, "number of links resolved at once")
	pf.StringVar(&cfg.LogLevel, "log-level", "warn", "one of debug, info, warn, error, none")
	pf.StringVar(&cfg.LogFile, "log-file", "", "append logs to this file instead of stderr")
	pf.StringVar(&cfg.CredentialsFile, "credentials", config.DefaultCredentialsFile(), "credentials file written by `allen reset`")

	l = loader.NewSpinner()
}

var rootCmd = &cobra.Command{
	Use:               "allen",
	Short:             "allen is a command line client for the Allen digital classroom",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv(&cfg)
	if err := config.ValidateConfig(&cfg); err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.LogFile != "" {
		c, err := logger.SetLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		logCloser = c
	}
	return nil
}

// newClient logs in with the first credential source that is set.
func newClient(ctx context.Context) (*allen.Client, error) {
	creds, src, err := config.ResolveCredentials(&cfg)
	if err != nil {
		return nil, err
	}
	credentialsSource = src
	if creds.Token == "" && (creds.Username == "" || creds.Password == "") {
		return nil, errNoCredentials
	}

	var client *allen.Client
	err = loader.Run(l, "[ Logging in... ]", func() error {
		var err error
		client, err = allen.New(ctx, creds, clientOptions()...)
		return err
	})
	return client, err
}

func clientOptions() []allen.Option {
	opts := []allen.Option{allen.WithHost(cfg.Host)}
	if cfg.Insecure {
		opts = append(opts, allen.WithInsecure())
	}
	return opts
}

// Execute func
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	checkError(rootCmd.ExecuteContext(ctx))
}
