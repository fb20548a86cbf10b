// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// UncategorizedLabel is the display name of records that carry no category.
const UncategorizedLabel = "Uncategorized"

// DefaultCategoryIcon is shown for categories outside the known icon table.
const DefaultCategoryIcon = "📌"

// categoryIcons maps the known category labels to their icons.
var categoryIcons = map[string]string{
	"food":           "🍔",
	"groceries":      "🛒",
	"dining out":     "🍽️",
	"transport":      "🚗",
	"transportation": "🚗",
	"entertainment":  "🎬",
	"shopping":       "🛍️",
	"bills":          "📄",
	"utilities":      "💡",
	"health":         "💊",
	"healthcare":     "💊",
	"education":      "📚",
	"travel":         "✈️",
	"rent":           "🏠",
	"housing":        "🏠",
	"subscriptions":  "🔁",
	"other":          "📦",
}

// Category is either a known label or Unspecified. The zero value is Unspecified.
// Category values are comparable and safe to use as map keys.
type Category struct {
	label string
	known bool
}

// Unspecified is the category of records that carry no category.
var Unspecified = Category{}

// KnownCategory returns the category for the given label.
// Blank labels collapse to Unspecified.
func KnownCategory(label string) Category {
	label = strings.TrimSpace(label)
	if label == "" {
		return Unspecified
	}
	return Category{label: label, known: true}
}

// IsUnspecified reports whether the category is the Unspecified sentinel.
func (c Category) IsUnspecified() bool {
	return !c.known
}

// Label returns the display label.
func (c Category) Label() string {
	if !c.known {
		return UncategorizedLabel
	}
	return c.label
}

// Raw returns the label as sent to the backend, empty for Unspecified.
func (c Category) Raw() string {
	return c.label
}

// FoldKey returns a case-folded key used for loose category matching.
func (c Category) FoldKey() string {
	if !c.known {
		return ""
	}
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(c.label)
}

// Matches reports whether two categories refer to the same label, ignoring case.
// Unspecified only matches Unspecified.
func (c Category) Matches(other Category) bool {
	if c.known != other.known {
		return false
	}
	return c.FoldKey() == other.FoldKey()
}

// Icon returns the icon for the category, falling back to DefaultCategoryIcon.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[strings.ToLower(c.label)]; ok && c.known {
		return icon
	}
	return DefaultCategoryIcon
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return c.Label()
}
