package discovery

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ignatzorin/projecthub-backend/internal/models"
	"github.com/ignatzorin/projecthub-backend/internal/pkg/apperror"
)

// Catalog — неизменяемая коллекция проектов, по которой идёт поиск.
type Catalog struct {
	projects   []models.Project
	index      map[string]int
	categories map[string]struct{}
	skills     map[string]struct{}
}

// NewCatalog проверяет инварианты (уникальный id, допустимый статус) и строит каталог.
// knownCategories дополняет словарь категорий значениями, которых нет у проектов.
func NewCatalog(projects []models.Project, knownCategories []string) (*Catalog, error) {
	c := &Catalog{
		projects:   make([]models.Project, 0, len(projects)),
		index:      make(map[string]int, len(projects)),
		categories: make(map[string]struct{}),
		skills:     make(map[string]struct{}),
	}

	for _, p := range projects {
		if _, exists := c.index[p.ID]; exists {
			return nil, apperror.Wrap(fmt.Errorf("id %q", p.ID), apperror.ErrDuplicateID.Code, apperror.ErrDuplicateID.Message)
		}
		if !p.Status.IsValid() {
			return nil, apperror.Wrap(fmt.Errorf("project %q: status %q", p.ID, p.Status), apperror.ErrInvalidStatus.Code, apperror.ErrInvalidStatus.Message)
		}

		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p.Clone())
		for _, category := range p.Categories {
			c.categories[category] = struct{}{}
		}
		for _, skill := range p.Skills {
			c.skills[skill] = struct{}{}
		}
	}

	for _, category := range knownCategories {
		if category != "" {
			c.categories[category] = struct{}{}
		}
	}

	return c, nil
}

// Len возвращает количество проектов.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Projects возвращает копию всех проектов в порядке каталога.
func (c *Catalog) Projects() []models.Project {
	return cloneProjects(c.projects)
}

// Project ищет проект по идентификатору.
func (c *Catalog) Project(id string) (models.Project, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Project{}, false
	}
	return c.projects[i].Clone(), true
}

// HasCategory сообщает, известна ли категория каталогу.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.categories[category]
	return ok
}

// Categories возвращает отсортированный словарь категорий.
func (c *Catalog) Categories() []string {
	return sortedKeys(c.categories)
}

// Skills возвращает отсортированный список навыков, встречающихся в проектах.
func (c *Catalog) Skills() []string {
	return sortedKeys(c.skills)
}

// Filter применяет состояние фильтра ко всему каталогу.
func (c *Catalog) Filter(s FilterState) []models.Project {
	return Apply(c.projects, s)
}

// Featured выбирает до count случайных проектов. Источник случайности передаётся явно,
// чтобы выбор был воспроизводимым при фиксированном seed.
func (c *Catalog) Featured(rng *rand.Rand, count int) []models.Project {
	if count <= 0 || len(c.projects) == 0 {
		return []models.Project{}
	}
	if count > len(c.projects) {
		count = len(c.projects)
	}

	out := make([]models.Project, 0, count)
	for _, i := range rng.Perm(len(c.projects))[:count] {
		out = append(out, c.projects[i].Clone())
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
