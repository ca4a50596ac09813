package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/encore/internal/shared"
	"github.com/urfave/cli/v3"
)

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and storage",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config file from the bundled template",
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Create the SQLite database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// SetupConfig writes config.toml (or the --config path) from the embedded template.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := r.configPath
	if path == "" {
		path = "config.toml"
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Wrote %s\n", path)
}

// SetupDatabase initializes the SQLite database and runs migrations.
//
// Badger and memory stores need no setup.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config := r.config
	if _, err := os.Stat(r.configPath); err != nil && r.configPath != "" {
		r.logger.Info("config file not found, creating from template", "path", r.configPath)
		if err := shared.CreateConfigFile(r.configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else if loaded, err := shared.LoadConfig(r.configPath); err == nil {
			config = loaded
		}
	}

	if config.Database.Driver != shared.DriverSQLite {
		return r.writePlain("Nothing to set up for the %s driver\n", config.Database.Driver)
	}

	lock, err := shared.LockStore(config.Database.Path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return r.writePlain("✓ Database ready at %s\n", config.Database.Path)
}
