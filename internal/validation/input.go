package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Ограничения на входные данные фильтров.
const (
	MaxSearchLength   = 200
	MaxSelectorLength = 100
	MaxSkillLength    = 50
	MaxRawQueryLength = 2048
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateSearch проверяет текстовый запрос; пустой запрос допустим.
func ValidateSearch(query string) error {
	return ValidateLength("поисковый запрос", query, 0, MaxSearchLength)
}

// ValidateSelector проверяет длину селектора статуса или категории.
// Пустое значение допустимо и означает "all".
func ValidateSelector(fieldName, value string) error {
	return ValidateLength(fieldName, value, 0, MaxSelectorLength)
}

// ValidateSkill проверяет имя навыка.
func ValidateSkill(skill string) error {
	if err := ValidateNonEmpty("навык", skill); err != nil {
		return err
	}
	return ValidateLength("навык", strings.TrimSpace(skill), 1, MaxSkillLength)
}

// ValidateRawQuery проверяет строку запроса, из которой восстанавливается состояние.
func ValidateRawQuery(raw string) error {
	if len(raw) > MaxRawQueryLength {
		return fmt.Errorf("строка запроса не может быть длиннее %d байт", MaxRawQueryLength)
	}
	return nil
}
