package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category has no registered templates.
var ErrUnknownCategory = errors.New("no templates for category")

type Category string

const (
	CategoryImage      Category = "image"
	CategoryWorkflow   Category = "workflow"
	CategoryAutomation Category = "automation"
	CategoryCode       Category = "code"
	CategoryAnalysis   Category = "analysis"
)

// AllCategories returns every declared category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryImage,
		CategoryWorkflow,
		CategoryAutomation,
		CategoryCode,
		CategoryAnalysis,
	}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Specificity string

const (
	SpecificityLow     Specificity = "low"
	SpecificityMedium  Specificity = "medium"
	SpecificityHigh    Specificity = "high"
	SpecificityExtreme Specificity = "extreme"
)

// AllSpecificities returns every specificity level from least to most specific.
func AllSpecificities() []Specificity {
	return []Specificity{
		SpecificityLow,
		SpecificityMedium,
		SpecificityHigh,
		SpecificityExtreme,
	}
}

func ParseSpecificity(s string) (Specificity, error) {
	for _, sp := range AllSpecificities() {
		if string(sp) == s {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown specificity %q", s)
}

// Ratio is the share of a template's constraint and quality vocabulary folded into
// a generated prompt. Unknown levels fall back to the medium ratio.
func (s Specificity) Ratio() float64 {
	switch s {
	case SpecificityLow:
		return 0.2
	case SpecificityMedium:
		return 0.5
	case SpecificityHigh:
		return 0.8
	case SpecificityExtreme:
		return 1.0
	default:
		return 0.5
	}
}

// Intent is the (action, target) pair pulled out of free text.
type Intent struct {
	Action string
	Target string
}

type OptimizationResult struct {
	Original  string
	Optimized string
	Category  Category
}
