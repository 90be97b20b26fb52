package service

import (
	"context"
	"fmt"

	"github.com/ignatzorin/projecthub-backend/internal/models"
	"github.com/ignatzorin/projecthub-backend/internal/seed"
)

// ProjectWriter сохраняет проекты в хранилище.
type ProjectWriter interface {
	UpsertAll(ctx context.Context, projects []models.Project) error
}

// SeedService заполняет базу демонстрационными проектами.
type SeedService struct {
	projects ProjectWriter
}

// NewSeedService создаёт новый сервис для генерации данных.
func NewSeedService(projects ProjectWriter) *SeedService {
	return &SeedService{projects: projects}
}

// SeedProjects записывает демонстрационный каталог и возвращает число проектов.
func (s *SeedService) SeedProjects(ctx context.Context) (int, error) {
	projects := seed.Projects()
	if err := s.projects.UpsertAll(ctx, projects); err != nil {
		return 0, fmt.Errorf("seed service: failed to upsert projects: %w", err)
	}
	return len(projects), nil
}
