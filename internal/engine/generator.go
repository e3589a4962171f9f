package engine

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const qualityShare = 0.4

var (
	imageSubjects = []string{
		"portrait", "landscape", "product shot", "architectural detail",
		"street photography", "macro photography", "wildlife", "fashion editorial",
		"food photography", "interior design", "nature scene", "urban exploration",
	}

	imageActions = []string{
		"showcasing", "highlighting", "emphasizing", "capturing",
		"depicting", "illustrating", "featuring", "presenting",
	}

	workflowTasks = []string{
		"data ingestion", "report generation", "approval routing",
		"notification dispatch", "backup process", "sync operation",
		"data validation", "record processing", "file transformation",
	}

	codeLanguages = []string{"Python", "JavaScript", "TypeScript", "Go", "Rust", "Java"}

	codeFunctionality = []string{
		"parses CSV files", "makes HTTP requests", "processes queue messages",
		"validates user input", "generates reports", "manages database connections",
		"handles file uploads", "implements caching", "processes webhooks",
	}
)

// selection is the vocabulary drawn from one template for one prompt.
type selection struct {
	modifiers   []string
	constraints []string
	quality     []string
}

type Generator struct {
	catalog *Catalog
	src     Source
}

func NewGenerator(catalog *Catalog, src Source) *Generator {
	return &Generator{catalog: catalog, src: src}
}

// Generate assembles count random prompts for category. It either returns exactly
// count prompts or an error.
func (g *Generator) Generate(category Category, count int, specificity Specificity) ([]string, error) {
	templates := g.catalog.TemplatesFor(category)
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	ratio := specificity.Ratio()
	slog.Debug("Generating prompts", "category", category, "count", count, "ratio", ratio)

	prompts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		tmpl := templates[g.src.IntN(len(templates))]
		sel := g.selectFrom(tmpl, ratio)

		prompt, err := g.format(category, sel)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, prompt)
	}
	return prompts, nil
}

func (g *Generator) selectFrom(tmpl Template, ratio float64) selection {
	numModifiers := max(1, int(math.Floor(float64(len(tmpl.Modifiers))*ratio*uniform(g.src, 0.3, 0.7))))
	numConstraints := int(math.Floor(float64(len(tmpl.Constraints)) * ratio))

	sel := selection{
		modifiers:   sample(g.src, tmpl.Modifiers, numModifiers),
		constraints: sample(g.src, tmpl.Constraints, numConstraints),
	}

	if g.src.Float64() < ratio {
		numQuality := max(1, int(math.Floor(float64(len(tmpl.QualityTokens))*qualityShare)))
		sel.quality = sample(g.src, tmpl.QualityTokens, numQuality)
	}
	return sel
}

func (g *Generator) format(category Category, sel selection) (string, error) {
	switch category {
	case CategoryImage:
		return g.formatImage(sel), nil
	case CategoryWorkflow, CategoryAutomation:
		return g.formatWorkflow(sel), nil
	case CategoryCode:
		return g.formatCode(sel), nil
	default:
		return "", fmt.Errorf("%w: %s has no formatter", ErrUnknownCategory, category)
	}
}

func (g *Generator) formatImage(sel selection) string {
	subject := choice(g.src, imageSubjects)
	action := choice(g.src, imageActions)

	style := "realistic"
	switch {
	case len(sel.modifiers) >= 2:
		style = strings.Join(sel.modifiers[:2], ", ")
	case len(sel.modifiers) == 1:
		style = sel.modifiers[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s the subject", capitalize(style), subject, action)
	appendClause(&b, "Must preserve", head(sel.constraints, 3))
	appendClause(&b, "Quality requirements", sel.quality)
	return b.String()
}

func (g *Generator) formatWorkflow(sel selection) string {
	task := choice(g.src, workflowTasks)
	condition := "on trigger"
	if len(sel.modifiers) > 0 {
		condition = choice(g.src, sel.modifiers)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create %s workflow that %s", task, condition)
	appendClause(&b, "Requirements", head(sel.constraints, 4))
	appendClause(&b, "Standards", sel.quality)
	return b.String()
}

func (g *Generator) formatCode(sel selection) string {
	lang := choice(g.src, codeLanguages)
	functionality := choice(g.src, codeFunctionality)
	modifier := "function"
	if len(sel.modifiers) > 0 {
		modifier = choice(g.src, sel.modifiers)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write %s %s that %s", lang, modifier, functionality)
	appendClause(&b, "Must include", head(sel.constraints, 4))
	appendClause(&b, "Quality", sel.quality)
	return b.String()
}

func appendClause(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, ". %s: %s", label, strings.Join(items, ", "))
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
