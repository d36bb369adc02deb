package cmd

import (
	"github.com/leet-tools/leet/internal/leet/config"
	lerrors "github.com/leet-tools/leet/internal/leet/errors"
	"github.com/leet-tools/leet/internal/log"
)

// Process exit codes
const (
	ExitOK              = 0
	ExitError           = 1
	ExitDirectoryExists = 2
)

// loadConfig loads the config from --config or the well-known paths
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		log.Info("Loading config from %s", configPath)
	} else {
		log.Info("Loading config from default paths")
	}
	return config.Load(configPath)
}

// exitCode maps an error to the process exit code
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case lerrors.Is(err, lerrors.ErrDirectoryExists):
		return ExitDirectoryExists
	default:
		return ExitError
	}
}

// reportError logs err for the user and returns the exit code to use
func reportError(err error) int {
	log.Error("%v", err)

	var e *lerrors.Error
	if lerrors.As(err, &e) {
		switch e.Kind {
		case lerrors.KindDirectoryExists:
			log.ErrorH2("Please delete the directory %s and try again", e.Subject)
		case lerrors.KindConfigNotFound:
			log.ErrorH2("Please create one in ~/%s or %s", config.HOME_CONFIG_PATH, config.ETC_CONFIG_PATH)
		case lerrors.KindAPI:
			log.ErrorH2("Check that the problem URL is correct")
		}
	}
	return exitCode(err)
}
