package engine

import "slices"

// Template is the vocabulary bundle for one category. Structure documents the shape
// of the generated prompt; it is not interpolated.
type Template struct {
	Category      Category `json:"category" yaml:"category"`
	Structure     string   `json:"structure" yaml:"structure"`
	Modifiers     []string `json:"modifiers" yaml:"modifiers"`
	Constraints   []string `json:"constraints" yaml:"constraints"`
	QualityTokens []string `json:"quality_tokens" yaml:"quality_tokens"`
}

func (t Template) clone() Template {
	t.Modifiers = slices.Clone(t.Modifiers)
	t.Constraints = slices.Clone(t.Constraints)
	t.QualityTokens = slices.Clone(t.QualityTokens)
	return t
}

// Catalog holds the templates registered per category. It is never mutated after
// construction, so a single instance is shared by every request.
type Catalog struct {
	templates map[Category][]Template
}

func NewCatalog(templates ...Template) *Catalog {
	c := &Catalog{templates: make(map[Category][]Template)}
	for _, t := range templates {
		c.templates[t.Category] = append(c.templates[t.Category], t.clone())
	}
	return c
}

// TemplatesFor returns copies of the templates registered for category, or an
// empty slice when there are none.
func (c *Catalog) TemplatesFor(category Category) []Template {
	registered := c.templates[category]
	out := make([]Template, 0, len(registered))
	for _, t := range registered {
		out = append(out, t.clone())
	}
	return out
}

// Categories lists the categories that have at least one template, in the order of
// AllCategories.
func (c *Catalog) Categories() []Category {
	var out []Category
	for _, category := range AllCategories() {
		if len(c.templates[category]) > 0 {
			out = append(out, category)
		}
	}
	return out
}

var defaultCatalog = NewCatalog(
	Template{
		Category:  CategoryImage,
		Structure: "{subject} {action} {style} {technical}",
		Modifiers: []string{
			"photorealistic", "artistic", "abstract", "hyper-detailed",
			"minimalist", "dramatic", "cinematic", "editorial",
			"vibrant", "muted tones", "high contrast", "soft lighting",
		},
		Constraints: []string{
			"maintain exact facial features and proportions",
			"preserve original identity and likeness",
			"keep consistent lighting and shadows",
			"match existing color palette and temperature",
			"ensure natural blending and transitions",
			"avoid distortion or warping",
			"maintain background integrity",
			"preserve skin texture and tone",
		},
		QualityTokens: []string{
			"8k resolution", "professional photography", "studio lighting",
			"bokeh", "shallow depth of field", "golden hour",
			"sharp focus", "HDR", "award-winning", "magazine quality",
		},
	},
	Template{
		Category:  CategoryWorkflow,
		Structure: "Create a {workflow_type} that {action} with {requirements}",
		Modifiers: []string{
			"automated pipeline", "approval process", "data transformation",
			"notification system", "scheduled task", "event-driven workflow",
			"multi-stage process", "conditional routing", "parallel execution",
		},
		Constraints: []string{
			"error handling for each step",
			"rollback mechanism on failure",
			"logging and audit trail",
			"idempotent operations",
			"timeout handling",
			"retry logic with exponential backoff",
			"state persistence",
			"concurrency control",
		},
		QualityTokens: []string{
			"production-ready", "scalable", "maintainable",
			"well-documented", "testable", "monitored", "resilient",
		},
	},
	Template{
		Category:  CategoryAutomation,
		Structure: "Automate {task} that {condition} and {output}",
		Modifiers: []string{
			"triggers when", "runs daily at", "monitors continuously",
			"responds to events", "processes batch", "streams data",
			"executes on schedule", "reacts to changes",
		},
		Constraints: []string{
			"handle edge cases and null values",
			"validate input data",
			"graceful degradation",
			"rate limiting and throttling",
			"concurrent execution safety",
			"data consistency guarantees",
			"transaction management",
			"resource cleanup",
		},
		QualityTokens: []string{
			"reliable", "fault-tolerant", "observable",
			"recoverable", "performant", "secure",
		},
	},
	Template{
		Category:  CategoryCode,
		Structure: "Write {language} code that {functionality} with {requirements}",
		Modifiers: []string{
			"class implementation", "API endpoint", "data processor",
			"utility function", "CLI tool", "background service",
			"database layer", "service integration", "message handler",
		},
		Constraints: []string{
			"type hints/annotations",
			"error handling with specific exceptions",
			"input validation",
			"unit tests included",
			"docstrings/comments for complex logic",
			"no hardcoded values",
			"configuration externalized",
			"logging instrumentation",
		},
		QualityTokens: []string{
			"production-grade", "efficient", "readable",
			"maintainable", "well-tested", "documented", "SOLID principles",
		},
	},
)

// DefaultCatalog returns the built-in catalog. Analysis is declared as a category
// but has no templates yet.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
