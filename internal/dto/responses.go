package dto

import "github.com/ignatzorin/projecthub-backend/internal/models"

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProjectListResponse represents a plain list of projects
type ProjectListResponse struct {
	Total    int              `json:"total"`
	Projects []models.Project `json:"projects"`
}

// VocabularyResponse lists category or skill names
type VocabularyResponse struct {
	Items []string `json:"items"`
}

// SeedResponse represents the result of seeding the project table
type SeedResponse struct {
	Message  string `json:"message"`
	Projects int    `json:"projects"`
}
