package models

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MaxNameLen максимальная длина названия товара
	MaxNameLen = 120
	// MaxDescriptionLen максимальная длина описания товара
	MaxDescriptionLen = 500
)

// ValidationError describes a single invalid product field.
// No write is issued for a candidate that fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Normalize trims whitespace from the text fields.
// Должна вызываться до Validate, чтобы проверялись итоговые значения.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
}

// Validate checks the field constraints shared by create and update.
// Returns *ValidationError for the first violated constraint.
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if len(p.Name) > MaxNameLen {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("must not exceed %d characters", MaxNameLen)}
	}
	if len(p.Description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: fmt.Sprintf("must not exceed %d characters", MaxDescriptionLen)}
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return &ValidationError{Field: "price", Reason: "must be a finite number"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	if p.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "cannot be negative"}
	}
	return nil
}
