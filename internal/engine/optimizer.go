package engine

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	defaultAction = "create"
	defaultTarget = "item"
)

type keywordSet struct {
	category Category
	keywords []string
}

// Order matters: image keywords win over workflow, workflow over code.
var classificationRules = []keywordSet{
	{
		category: CategoryImage,
		keywords: []string{"photo", "image", "picture", "hair", "face", "look", "style", "portrait", "background"},
	},
	{
		category: CategoryWorkflow,
		keywords: []string{"workflow", "process", "pipeline", "approval", "automate"},
	},
	{
		category: CategoryCode,
		keywords: []string{"code", "function", "script", "program", "write", "implement", "algorithm"},
	},
}

var (
	intentActions = []string{"give", "make", "create", "change", "modify", "show", "generate", "build"}
	intentTargets = []string{"hair", "hairstyle", "haircut", "photo", "image", "code", "workflow", "background"}
)

type hairstyle struct {
	name        string
	description string
}

// Checked in order; "bowl cut" must be tried before the shorter names.
var hairstyles = []hairstyle{
	{"bowl cut", "a classic bowl cut: straight, even fringe across the forehead, rounded silhouette around the head, clean and symmetrical"},
	{"pixie", "a modern pixie cut: short on sides and back, slightly longer on top, textured and layered"},
	{"bob", "a sleek bob: chin-length, blunt cut, straight and polished"},
	{"mullet", "a mullet: short in front and on top, long in the back, with clear distinction between lengths"},
	{"undercut", "an undercut: shaved or very short sides and back, longer hair on top with clear contrast"},
	{"fade", "a fade: gradual transition from short to longer hair, clean taper on sides and back"},
	{"buzz", "a buzz cut: uniform short length all around, clean and low-maintenance"},
	{"crew cut", "a crew cut: short on sides, slightly longer on top, classic military style"},
}

const genericHairstyle = "the requested hairstyle with appropriate length, shape, and styling details"

// Optimizer rewrites a vague instruction into an explicit one using keyword rules.
// It holds no state.
type Optimizer struct{}

func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

// Optimize classifies text and expands it. A non-empty context is prepended as its
// own sentence.
func (o *Optimizer) Optimize(text, context string) OptimizationResult {
	category := Classify(text)
	intent := ExtractIntent(text)
	slog.Debug("Optimizing prompt", "category", category, "action", intent.Action, "target", intent.Target)

	var b strings.Builder
	if context != "" {
		b.WriteString(context)
		b.WriteString(". ")
	}
	b.WriteString(expand(category, text, intent))

	return OptimizationResult{
		Original:  text,
		Optimized: strings.TrimSpace(b.String()),
		Category:  category,
	}
}

// Classify returns the category of the first keyword set with a match in text,
// defaulting to image.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range classificationRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return CategoryImage
}

func ExtractIntent(text string) Intent {
	lower := strings.ToLower(text)
	return Intent{
		Action: firstMatch(lower, intentActions, defaultAction),
		Target: firstMatch(lower, intentTargets, defaultTarget),
	}
}

// DescribeHairstyle maps the first named cut found in text to its description.
func DescribeHairstyle(text string) string {
	lower := strings.ToLower(text)
	for _, h := range hairstyles {
		if strings.Contains(lower, h.name) {
			return h.description
		}
	}
	return genericHairstyle
}

func expand(category Category, text string, intent Intent) string {
	switch category {
	case CategoryImage:
		return expandImage(text, intent)
	case CategoryWorkflow, CategoryAutomation:
		return expandWorkflow(intent)
	case CategoryCode:
		return expandCode(intent)
	default:
		return expandGeneric(text)
	}
}

func expandImage(text string, intent Intent) string {
	lower := strings.ToLower(text)
	var clauses []string

	if containsAny(lower, []string{"photo", "image"}) {
		clauses = append(clauses, "Using the uploaded photo, keep the person or subject's face, identity, and proportions exactly the same")
	}

	switch {
	case containsAny(lower, []string{"hair", "haircut"}):
		clauses = append(clauses,
			"Change only their hairstyle to "+DescribeHairstyle(text),
			"The haircut should look realistic and naturally blended with the existing hair texture, color, lighting, and head shape",
		)
	case strings.Contains(lower, "background"):
		clauses = append(clauses,
			"Change only the background while preserving the subject completely",
			"Ensure seamless integration with proper lighting, shadows, and depth matching",
		)
	default:
		clauses = append(clauses, fmt.Sprintf("Modify the %s while preserving all other aspects", intent.Target))
	}

	clauses = append(clauses, "Do not alter facial features, expression, age, or any unspecified elements")
	return strings.Join(clauses, ". ")
}

func expandWorkflow(intent Intent) string {
	return strings.Join([]string{
		fmt.Sprintf("Create a production-ready workflow that %ss %s", intent.Action, intent.Target),
		"Include: error handling for each step, rollback mechanism on failure, logging and audit trail, retry logic with exponential backoff",
		"Ensure idempotent operations, timeout handling, monitoring hooks, and state persistence",
	}, ". ")
}

func expandCode(intent Intent) string {
	return strings.Join([]string{
		fmt.Sprintf("Write production-grade code that %ss %s", intent.Action, intent.Target),
		"Must include: type hints/annotations, comprehensive error handling with specific exceptions, input validation, unit tests, docstrings for complex logic",
		"No hardcoded values, configuration externalized, efficient algorithm choices, clear variable names, logging instrumentation",
	}, ". ")
}

func expandGeneric(text string) string {
	return fmt.Sprintf("Please provide a detailed, specific implementation of: %s. Include all necessary constraints, requirements, and quality standards for production use.", text)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func firstMatch(lower string, candidates []string, fallback string) string {
	for _, c := range candidates {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return fallback
}
