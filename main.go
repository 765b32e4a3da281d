package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-solo/internal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
)

const configPathEnv = "CONFIG_PATH"

// main - is the entry point of the game server. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := config.NewLogger(os.Stdout, conf.LogLevel)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config. Without a config file only defaults and environment are used.
func initConfig() *config.Config {
	path := os.Getenv(configPathEnv)
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "config.yml")
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		conf, err := config.LoadEnv()
		if err != nil {
			panic(err)
		}

		return conf
	}

	return config.MustLoad(path)
}
