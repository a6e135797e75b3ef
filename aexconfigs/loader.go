package aexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/configs"
	"github.com/aexlang/aex/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// earlier paths win, so explicit files from the command line go
	// first
	paths = append(paths, *configFlag...)

	filenames := []string{
		"aex.cue",
		".aex.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
