package discovery

import (
	"net/url"
	"strings"

	"github.com/ignatzorin/projecthub-backend/internal/models"
)

// Snapshot — согласованная пара "состояние фильтра + результат", передаваемая подписчику.
type Snapshot struct {
	State   FilterState
	Results []models.Project
	Query   url.Values
}

// Listener получает снимок после каждого изменения состояния.
type Listener interface {
	OnChange(Snapshot)
}

// ListenerFunc позволяет использовать функцию как Listener.
type ListenerFunc func(Snapshot)

func (f ListenerFunc) OnChange(s Snapshot) { f(s) }

// Engine владеет состоянием фильтра одной сессии просмотра и пересчитывает результат
// при каждом изменении. Все операции синхронны. Engine не предназначен для
// одновременного использования из нескольких горутин.
type Engine struct {
	catalog  *Catalog
	state    FilterState
	results  []models.Project
	listener Listener
}

// NewEngine создаёт движок; начальное состояние читается из параметров адреса.
// listener может быть nil.
func NewEngine(catalog *Catalog, initial url.Values, listener Listener) *Engine {
	e := &Engine{
		catalog:  catalog,
		listener: listener,
	}
	e.state = e.normalize(Decode(initial))
	e.results = catalog.Filter(e.state)
	return e
}

// SetText задаёт строку текстового поиска.
func (e *Engine) SetText(query string) {
	e.mutate(func(s *FilterState) {
		s.Search = query
	})
}

// SetStatus задаёт селектор статуса. Нераспознанное значение трактуется как "all".
func (e *Engine) SetStatus(selector string) {
	e.mutate(func(s *FilterState) {
		s.Status = ParseStatusSelector(selector)
	})
}

// SetCategory задаёт селектор категории. Категория, неизвестная каталогу, трактуется как "all".
func (e *Engine) SetCategory(selector string) {
	e.mutate(func(s *FilterState) {
		s.Category = e.categorySelector(selector)
	})
}

// ToggleSkill добавляет навык, если его нет, и убирает, если он уже выбран.
// Имена, которые нельзя записать в строку запроса (пустые или с запятой), игнорируются.
func (e *Engine) ToggleSkill(name string) {
	skill := strings.TrimSpace(name)
	if !validSkillName(skill) {
		e.mutate(func(*FilterState) {})
		return
	}
	e.mutate(func(s *FilterState) {
		if i := indexOf(s.Skills, skill); i >= 0 {
			s.Skills = removeAt(s.Skills, i)
			return
		}
		s.Skills = append(s.Skills, skill)
	})
}

// ClearAll сбрасывает все фильтры.
func (e *Engine) ClearAll() {
	e.mutate(func(s *FilterState) {
		*s = DefaultFilterState()
	})
}

// State возвращает копию текущего состояния.
func (e *Engine) State() FilterState {
	return e.state.Clone()
}

// Results возвращает текущий результат в порядке каталога.
func (e *Engine) Results() []models.Project {
	return cloneProjects(e.results)
}

// Query возвращает сериализованное состояние.
func (e *Engine) Query() url.Values {
	return Encode(e.state)
}

// QueryString возвращает каноническую строку запроса.
func (e *Engine) QueryString() string {
	return EncodeQuery(e.state)
}

// Snapshot возвращает согласованный снимок состояния и результата.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:   e.State(),
		Results: e.Results(),
		Query:   e.Query(),
	}
}

// mutate применяет изменение, полностью пересчитывает результат и уведомляет подписчика.
func (e *Engine) mutate(apply func(*FilterState)) {
	next := e.state.Clone()
	apply(&next)
	e.state = e.normalize(next)
	e.results = e.catalog.Filter(e.state)

	if e.listener != nil {
		e.listener.OnChange(e.Snapshot())
	}
}

func (e *Engine) normalize(s FilterState) FilterState {
	s.Status = ParseStatusSelector(s.Status)
	s.Category = e.categorySelector(s.Category)

	var skills []string
	for _, raw := range s.Skills {
		skill := strings.TrimSpace(raw)
		if validSkillName(skill) && indexOf(skills, skill) < 0 {
			skills = append(skills, skill)
		}
	}
	s.Skills = skills
	return s
}

func (e *Engine) categorySelector(raw string) string {
	if raw == "" || raw == SelectorAll || !e.catalog.HasCategory(raw) {
		return SelectorAll
	}
	return raw
}

func validSkillName(skill string) bool {
	return skill != "" && !strings.Contains(skill, skillSeparator)
}

func removeAt(items []string, i int) []string {
	if len(items) == 1 {
		return nil
	}
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
