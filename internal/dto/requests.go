package dto

// StartSessionRequest represents the request to open a discovery session.
// Query may be a bare query string or a full location ("/projects?status=open").
type StartSessionRequest struct {
	Query string `json:"query"`
}

// SetSearchRequest represents the request to change the free-text query.
// An empty query is valid and clears the text filter.
type SetSearchRequest struct {
	Query *string `json:"query" binding:"required"`
}

// SetStatusRequest represents the request to change the status selector.
// Empty or unknown values reset the selector to "all".
type SetStatusRequest struct {
	Status *string `json:"status" binding:"required"`
}

// SetCategoryRequest represents the request to change the category selector.
// Empty or unknown values reset the selector to "all".
type SetCategoryRequest struct {
	Category *string `json:"category" binding:"required"`
}

// ToggleSkillRequest represents the request to add or remove a required skill.
type ToggleSkillRequest struct {
	Skill string `json:"skill" binding:"required"`
}
