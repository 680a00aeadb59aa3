package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/pkg/clock"
	"github.com/foolchen/lifeRestart/internal/repositories/catalog"
)

var exportPath string

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Copy the JSON catalog file into redis",
	Long: `Read the catalog from --catalog-file and replace the redis hash named by
--catalog-key with its contents.`,
	Args: cobra.NoArgs,
	RunE: runSeedCatalog,
}

var exportCatalogCmd = &cobra.Command{
	Use:   "export-catalog",
	Short: "Write the redis catalog to a JSON file",
	Long: `Read the redis hash named by --catalog-key and write it as a JSON catalog
to --out, or to --catalog-file when --out is not given.`,
	Args: cobra.NoArgs,
	RunE: runExportCatalog,
}

func init() {
	exportCatalogCmd.Flags().StringVar(&exportPath, "out", "", "Destination file")
}

func runSeedCatalog(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	source, err := newFileRepository(cfg.CatalogFile)
	if err != nil {
		return err
	}

	target, closeTarget, err := newRedisRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeTarget()

	return copyCatalog(ctx, source, target, "redis:"+cfg.RedisKey())
}

func runExportCatalog(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	path := exportPath
	if path == "" {
		path = cfg.CatalogFile
	}

	source, closeSource, err := newRedisRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	target, err := newFileRepository(path)
	if err != nil {
		return err
	}

	return copyCatalog(ctx, source, target, "file:"+path)
}

func newFileRepository(path string) (catalog.Repository, error) {
	repo, err := catalog.NewFileRepository(&catalog.FileConfig{
		Path:  path,
		Clock: clock.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file catalog repository")
	}
	return repo, nil
}

// copyCatalog replaces the contents of target with the catalog in source
func copyCatalog(ctx context.Context, source, target catalog.Repository, targetName string) error {
	got, err := source.Get(ctx, catalog.GetInput{})
	if err != nil {
		return errors.Wrap(err, "failed to read catalog")
	}

	put, err := target.Put(ctx, catalog.PutInput{Catalog: got.Catalog})
	if err != nil {
		return errors.Wrapf(err, "failed to write catalog to %s", targetName)
	}

	slog.Info("Catalog copied",
		"from", got.Source,
		"to", targetName,
		"talents", put.Count,
		"stored_at", put.StoredAt)
	return nil
}
