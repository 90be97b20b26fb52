package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/projecthub-backend/internal/db"
	"github.com/ignatzorin/projecthub-backend/internal/discovery"
	"github.com/ignatzorin/projecthub-backend/internal/repository"
	"github.com/ignatzorin/projecthub-backend/internal/service"
)

const defaultLocationPath = "/projects"

type rootOptions struct {
	databaseURL  string
	locationPath string
}

// NewRootCmd собирает дерево команд projectctl.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "projectctl",
		Short: "Project discovery from the command line",
		Long: `projectctl runs the project discovery engine locally: filter the catalog by text,
status, category and skills, print the share link, or decode a link back into filters.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "read the catalog from PostgreSQL instead of the built-in sample")
	rootCmd.PersistentFlags().StringVar(&opts.locationPath, "path", defaultLocationPath, "page path used for share links")

	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))
	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadCatalog читает встроенный каталог либо таблицу projects, если задан --database-url.
func (o *rootOptions) loadCatalog(ctx context.Context) (*discovery.Catalog, error) {
	if o.databaseURL == "" {
		return service.LoadCatalog(ctx, service.CatalogSourceSeed, nil)
	}

	conn, err := db.NewPostgres(ctx, o.databaseURL)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	catalog, err := service.LoadCatalog(ctx, service.CatalogSourcePostgres, repository.NewProjectRepository(conn))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}
