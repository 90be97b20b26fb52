package models

import "time"

// ProjectStatus описывает стадию жизненного цикла проекта.
type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// ProjectStatuses перечисляет все допустимые статусы в порядке отображения.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusOpen,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
}

// IsValid проверяет, что статус входит в перечисление.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// ProjectCompany — компания-владелец проекта.
type ProjectCompany struct {
	ID   string  `db:"company_id" json:"id"`
	Name string  `db:"company_name" json:"name"`
	Logo *string `db:"company_logo" json:"logo,omitempty"`
}

// Project представляет проект в каталоге.
type Project struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Company      ProjectCompany `json:"company"`
	Skills       []string       `json:"skills"`
	Categories   []string       `json:"categories"`
	Duration     string         `json:"duration"`
	Budget       *string        `json:"budget,omitempty"`
	Status       ProjectStatus  `json:"status"`
	TeamSize     int            `json:"team_size"`
	Applicants   []string       `json:"applicants"`
	Contributors []string       `json:"contributors,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Clone возвращает глубокую копию проекта.
func (p Project) Clone() Project {
	out := p
	out.Skills = cloneStrings(p.Skills)
	out.Categories = cloneStrings(p.Categories)
	out.Applicants = cloneStrings(p.Applicants)
	out.Contributors = cloneStrings(p.Contributors)
	if p.Budget != nil {
		budget := *p.Budget
		out.Budget = &budget
	}
	if p.Company.Logo != nil {
		logo := *p.Company.Logo
		out.Company.Logo = &logo
	}
	return out
}

// HasSkill сообщает, требует ли проект указанный навык.
func (p Project) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// HasCategory сообщает, относится ли проект к категории.
func (p Project) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
