package main

import (
	"context"
	"fmt"

	"github.com/erpbridge/odoorest/config"
	"github.com/erpbridge/odoorest/logging"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	config.HomeFlag

	Force bool `short:"f" long:"force" description:"Erase the existing configuration at the specified path"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	logger, err := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	if err != nil {
		return err
	}
	defer logger.AtExit()

	cfgLoader := config.NewLoader(opts.Home)

	configExists, err := cfgLoader.ConfigExists()
	if err != nil {
		return fmt.Errorf("couldn't verify configuration presence: %w", err)
	}

	if configExists && !opts.Force {
		return fmt.Errorf("configuration already exists at `%s` please remove it first or re-run using -f", cfgLoader.ConfigFilePath())
	}

	if configExists && opts.Force {
		if err := cfgLoader.Remove(); err != nil {
			return fmt.Errorf("couldn't remove the existing configuration: %w", err)
		}
	}

	cfg := config.NewDefaultConfig()

	if err := cfgLoader.Save(&cfg); err != nil {
		return fmt.Errorf("couldn't save configuration file: %w", err)
	}

	logger.Info("configuration generated successfully", logging.String("path", cfgLoader.ConfigFilePath()))

	return nil
}

func Init(ctx context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}

	short := "Initializes the gateway configuration"
	long := "Generate a configuration file holding the defaults of every setting"

	_, err := parser.AddCommand("init", short, long, &initCmd)
	return err
}
