// Package engine generates random prompts from a fixed template catalog and
// expands vague instructions into explicit ones with keyword rules.
package engine

import "log/slog"

type Engine struct {
	catalog   *Catalog
	generator *Generator
	optimizer *Optimizer
}

type Option func(*Engine)

// WithSource replaces the random source, typically with a seeded one in tests.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.generator = NewGenerator(e.catalog, src)
	}
}

func WithCatalog(catalog *Catalog) Option {
	return func(e *Engine) {
		e.catalog = catalog
		e.generator = NewGenerator(catalog, e.generator.src)
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:   DefaultCatalog(),
		optimizer: NewOptimizer(),
	}
	e.generator = NewGenerator(e.catalog, DefaultSource())
	for _, opt := range opts {
		opt(e)
	}
	slog.Debug("Prompt engine initialized", "categories", e.catalog.Categories())
	return e
}

func (e *Engine) Generate(category Category, count int, specificity Specificity) ([]string, error) {
	return e.generator.Generate(category, count, specificity)
}

func (e *Engine) Optimize(text, context string) OptimizationResult {
	return e.optimizer.Optimize(text, context)
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}
