package service

import (
	"context"
	"fmt"

	"github.com/ignatzorin/projecthub-backend/internal/discovery"
	"github.com/ignatzorin/projecthub-backend/internal/logger"
	"github.com/ignatzorin/projecthub-backend/internal/models"
	"github.com/ignatzorin/projecthub-backend/internal/pkg/apperror"
	"github.com/ignatzorin/projecthub-backend/internal/seed"
)

// Источники каталога.
const (
	CatalogSourceSeed     = "seed"
	CatalogSourcePostgres = "postgres"
)

// ProjectLister читает все проекты из хранилища.
type ProjectLister interface {
	ListAll(ctx context.Context) ([]models.Project, error)
}

// LoadCatalog загружает каталог один раз при старте. Для источника "seed" lister не нужен.
func LoadCatalog(ctx context.Context, source string, lister ProjectLister) (*discovery.Catalog, error) {
	var projects []models.Project

	switch source {
	case CatalogSourceSeed, "":
		projects = seed.Projects()
	case CatalogSourcePostgres:
		if lister == nil {
			return nil, apperror.New(apperror.ErrCodeInternal, "источник каталога postgres требует подключения к базе")
		}
		var err error
		projects, err = lister.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	default:
		return nil, apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный источник каталога %q", source))
	}

	catalog, err := discovery.NewCatalog(projects, seed.Categories)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	logger.WithComponent("catalog").
		WithField("source", source).
		WithField("projects", catalog.Len()).
		Info("каталог проектов загружен")

	return catalog, nil
}
