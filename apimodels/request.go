package apimodels

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/sozercan/prompt-generator/internal/engine"
)

const (
	DefaultCount       = 10
	MinCount           = 1
	MaxCount           = 1000
	MaxPromptLength    = 500
	MaxContextLength   = 500
	DefaultSpecificity = engine.SpecificityMedium
)

type GenerateRequest struct {
	// PromptType is one of the engine categories
	PromptType string `json:"prompt_type"`

	// Count defaults to 10 when omitted
	Count *int `json:"count,omitempty"`

	// Specificity defaults to "medium" when omitted
	Specificity *string `json:"specificity,omitempty"`
}

// GenerateParams is a GenerateRequest after validation and defaulting.
type GenerateParams struct {
	Category    engine.Category
	Count       int
	Specificity engine.Specificity
}

func (r GenerateRequest) Validate() (GenerateParams, error) {
	var verr ValidationError
	params := GenerateParams{
		Count:       DefaultCount,
		Specificity: DefaultSpecificity,
	}

	if r.PromptType == "" {
		verr.add("prompt_type", "field required", "missing")
	} else if c, err := engine.ParseCategory(r.PromptType); err != nil {
		verr.add("prompt_type", enumMessage(r.PromptType, categoryNames()), "enum")
	} else {
		params.Category = c
	}

	if r.Count != nil {
		switch {
		case *r.Count < MinCount:
			verr.add("count", "ensure this value is greater than or equal to 1", "value_error.number.not_ge")
		case *r.Count > MaxCount:
			verr.add("count", "ensure this value is less than or equal to 1000", "value_error.number.not_le")
		default:
			params.Count = *r.Count
		}
	}

	if r.Specificity != nil {
		if s, err := engine.ParseSpecificity(*r.Specificity); err != nil {
			verr.add("specificity", enumMessage(*r.Specificity, specificityNames()), "enum")
		} else {
			params.Specificity = s
		}
	}

	if verr.HasErrors() {
		return GenerateParams{}, &verr
	}
	return params, nil
}

type OptimizeRequest struct {
	VaguePrompt string `json:"vague_prompt"`

	// Context is prepended to the optimized prompt when non-empty
	Context *string `json:"context,omitempty"`
}

func (r OptimizeRequest) Validate() error {
	var verr ValidationError

	switch n := utf8.RuneCountInString(r.VaguePrompt); {
	case n < 1:
		verr.add("vague_prompt", "ensure this value has at least 1 characters", "value_error.any_str.min_length")
	case n > MaxPromptLength:
		verr.add("vague_prompt", "ensure this value has at most 500 characters", "value_error.any_str.max_length")
	}

	if r.Context != nil && utf8.RuneCountInString(*r.Context) > MaxContextLength {
		verr.add("context", "ensure this value has at most 500 characters", "value_error.any_str.max_length")
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

// ContextValue returns the context or an empty string when it was omitted.
func (r OptimizeRequest) ContextValue() string {
	if r.Context == nil {
		return ""
	}
	return *r.Context
}

func enumMessage(value string, allowed []string) string {
	msg := "value is not a valid enumeration member; permitted: '" + strings.Join(allowed, "', '") + "'"
	if suggestion := closest(value, allowed); suggestion != "" {
		msg += "; did you mean '" + suggestion + "'?"
	}
	return msg
}

// closest returns the best fuzzy match for value among allowed, if any.
func closest(value string, allowed []string) string {
	matches := fuzzy.Find(strings.ToLower(value), allowed)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func categoryNames() []string {
	var names []string
	for _, c := range engine.AllCategories() {
		names = append(names, string(c))
	}
	return names
}

func specificityNames() []string {
	var names []string
	for _, s := range engine.AllSpecificities() {
		names = append(names, string(s))
	}
	return names
}
