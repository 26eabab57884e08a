package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category label cannot be parsed.
var ErrUnknownCategory = errors.New("unknown sign category")

// Category groups signs by their regulatory function.
type Category string

const (
	CategoryWarning     Category = "warning"
	CategoryProhibition Category = "prohibition"
	CategoryMandatory   Category = "mandatory"
	CategoryInformation Category = "information"
	CategoryPriority    Category = "priority"
)

// CategoryAll is the pseudo-category that selects every sign in a catalog.
const CategoryAll Category = "all"

// AllCategories returns the real categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWarning,
		CategoryProhibition,
		CategoryMandatory,
		CategoryInformation,
		CategoryPriority,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryWarning:
		return "Warning"
	case CategoryProhibition:
		return "Prohibition"
	case CategoryMandatory:
		return "Mandatory"
	case CategoryInformation:
		return "Information"
	case CategoryPriority:
		return "Priority"
	case CategoryAll:
		return "Random"
	default:
		return string(c)
	}
}

// categoryAliases maps accepted labels (English and Czech) to categories.
var categoryAliases = map[string]Category{
	"warning":      CategoryWarning,
	"výstražné":    CategoryWarning,
	"prohibition":  CategoryProhibition,
	"zákazové":     CategoryProhibition,
	"mandatory":    CategoryMandatory,
	"příkazové":    CategoryMandatory,
	"information":  CategoryInformation,
	"informativní": CategoryInformation,
	"priority":     CategoryPriority,
	"přednost":     CategoryPriority,
	"all":          CategoryAll,
	"random":       CategoryAll,
	"vše":          CategoryAll,
}

// ParseCategory parses a category label case-insensitively. The labels
// "all", "random" and "vše" map to CategoryAll.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
