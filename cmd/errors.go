package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/internal/config"
	"github.com/allen-go/allen/internal/pkg/logger"
)

func checkError(err error) {
	if err == nil {
		return
	}

	var (
		rue *allen.ResponseUnavailableError
		ire *allen.InvalidResponseError
	)
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, promptui.ErrInterrupt) {
		os.Exit(1)
	} else if errors.Is(err, allen.ErrInvalidUsernamePassword) {
		if rmErr := forgetRejectedCredentials(); rmErr != nil {
			printErr(rmErr.Error())
		}
		exitWithMsg(err.Error())
	} else if errors.As(err, &rue) {
		logger.Errorf(err, "Response unavailable")
		exitWithMsg(fmt.Sprintf("%s, try again later or pass a fresh --jwt", err))
	} else if errors.As(err, &ire) {
		logger.Errorf(err, "Invalid response")
		exitWithMsg(err.Error())
	} else if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		logger.Errorf(err, "Request Timeout")
		exitWithMsg("request timed out")
	} else {
		logger.Errorf(err, "An error occurred")
		exitWithMsg(fmt.Sprintf("An error occurred: %v", err))
	}
}

// forgetRejectedCredentials removes the credentials file, but only when the
// rejected login actually used it.
func forgetRejectedCredentials() error {
	if credentialsSource != config.SourceFile {
		return nil
	}
	return config.RemoveCredentials(cfg.CredentialsFile)
}

func exitWithMsg(msg string) {
	printErr(msg)
	os.Exit(1)
}

func printErr(msg string) {
	fmt.Fprintln(os.Stderr, color.RedString(msg))
}
