// Package discovery реализует поиск проектов: фильтрацию каталога по тексту, статусу,
// категории и набору навыков, а также синхронизацию состояния фильтра со строкой запроса.
package discovery

import (
	"strings"

	"github.com/ignatzorin/projecthub-backend/internal/models"
)

// SelectorAll — значение селектора статуса или категории, отключающее ограничение.
const SelectorAll = "all"

// FilterState хранит текущие условия поиска.
// Пустой (nil) Skills означает отсутствие ограничения по навыкам.
type FilterState struct {
	Search   string   `json:"search"`
	Status   string   `json:"status"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// DefaultFilterState возвращает состояние без ограничений.
func DefaultFilterState() FilterState {
	return FilterState{
		Status:   SelectorAll,
		Category: SelectorAll,
	}
}

// IsDefault сообщает, что ни один фильтр не активен.
func (s FilterState) IsDefault() bool {
	return s.Search == "" && s.Status == SelectorAll && s.Category == SelectorAll && len(s.Skills) == 0
}

// HasSkill сообщает, выбран ли навык.
func (s FilterState) HasSkill(skill string) bool {
	return indexOf(s.Skills, skill) >= 0
}

// Equal сравнивает состояния; навыки сравниваются как множество, порядок выбора не важен.
func (s FilterState) Equal(o FilterState) bool {
	if s.Search != o.Search || s.Status != o.Status || s.Category != o.Category {
		return false
	}
	if len(s.Skills) != len(o.Skills) {
		return false
	}
	for _, skill := range s.Skills {
		if !o.HasSkill(skill) {
			return false
		}
	}
	for _, skill := range o.Skills {
		if !s.HasSkill(skill) {
			return false
		}
	}
	return true
}

// Clone возвращает копию, не разделяющую срез навыков.
func (s FilterState) Clone() FilterState {
	out := s
	if s.Skills != nil {
		out.Skills = append([]string(nil), s.Skills...)
	}
	return out
}

// Matches применяет все четыре предиката к проекту.
func Matches(p *models.Project, s FilterState) bool {
	return matchStatus(p, s.Status) &&
		matchCategory(p, s.Category) &&
		matchSkills(p, s.Skills) &&
		matchText(p, s.Search)
}

// Apply возвращает копии проектов, удовлетворяющих состоянию, в исходном порядке.
func Apply(projects []models.Project, s FilterState) []models.Project {
	result := make([]models.Project, 0, len(projects))
	for i := range projects {
		if Matches(&projects[i], s) {
			result = append(result, projects[i].Clone())
		}
	}
	return result
}

func cloneProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	for i := range projects {
		out[i] = projects[i].Clone()
	}
	return out
}

func matchText(p *models.Project, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Company.Name), q)
}

func matchStatus(p *models.Project, status string) bool {
	return status == SelectorAll || string(p.Status) == status
}

func matchCategory(p *models.Project, category string) bool {
	return category == SelectorAll || p.HasCategory(category)
}

// matchSkills — проверка подмножества: проект обязан требовать каждый выбранный навык.
func matchSkills(p *models.Project, skills []string) bool {
	for _, skill := range skills {
		if !p.HasSkill(skill) {
			return false
		}
	}
	return true
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
