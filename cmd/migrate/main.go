package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"

	"stayspot/internal/pkg/config"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS("migrations")),
	)
	if err != nil {
		return fmt.Errorf("prepare working directory: %w", err)
	}
	defer func() {
		if cerr := workdir.Close(); cerr != nil {
			slog.Warn("failed to clean up working directory", "error", cerr)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return fmt.Errorf("initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
