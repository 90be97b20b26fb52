package discovery

import (
	"net/url"
	"strings"

	"github.com/ignatzorin/projecthub-backend/internal/models"
)

// Имена параметров строки запроса.
const (
	ParamSearch   = "search"
	ParamStatus   = "status"
	ParamCategory = "category"
	ParamSkills   = "skills"
)

const skillSeparator = ","

// Encode переводит состояние в параметры запроса. Значения по умолчанию не пишутся.
func Encode(s FilterState) url.Values {
	values := url.Values{}
	if s.Search != "" {
		values.Set(ParamSearch, s.Search)
	}
	if s.Status != "" && s.Status != SelectorAll {
		values.Set(ParamStatus, s.Status)
	}
	if s.Category != "" && s.Category != SelectorAll {
		values.Set(ParamCategory, s.Category)
	}
	if len(s.Skills) > 0 {
		values.Set(ParamSkills, strings.Join(s.Skills, skillSeparator))
	}
	return values
}

// Decode восстанавливает состояние из параметров запроса.
// Отсутствующий параметр даёт значение по умолчанию, нераспознанный статус — "all".
func Decode(values url.Values) FilterState {
	state := DefaultFilterState()
	state.Search = values.Get(ParamSearch)
	state.Status = ParseStatusSelector(values.Get(ParamStatus))
	if category := values.Get(ParamCategory); category != "" {
		state.Category = category
	}
	state.Skills = SplitSkills(values.Get(ParamSkills))
	return state
}

// EncodeQuery возвращает каноническую строку запроса (ключи отсортированы).
func EncodeQuery(s FilterState) string {
	return Encode(s).Encode()
}

// ParseQuery разбирает строку запроса или адрес целиком ("/projects?status=open").
// Ошибки разбора не возвращаются: используется всё, что удалось прочитать.
func ParseQuery(raw string) FilterState {
	return Decode(ParseValues(raw))
}

// ParseValues выделяет параметры из строки запроса или адреса.
func ParseValues(raw string) url.Values {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	values, _ := url.ParseQuery(raw)
	if values == nil {
		values = url.Values{}
	}
	return values
}

// Location собирает адрес, которым можно поделиться.
func Location(path string, s FilterState) string {
	query := EncodeQuery(s)
	if query == "" {
		return path
	}
	return path + "?" + query
}

// ParseStatusSelector возвращает статус, если он входит в перечисление, иначе "all".
func ParseStatusSelector(raw string) string {
	if models.ProjectStatus(raw).IsValid() {
		return raw
	}
	return SelectorAll
}

// SplitSkills разбивает значение параметра skills. Пустые фрагменты и повторы отбрасываются.
func SplitSkills(raw string) []string {
	var skills []string
	for _, part := range strings.Split(raw, skillSeparator) {
		skill := strings.TrimSpace(part)
		if skill == "" || indexOf(skills, skill) >= 0 {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}
