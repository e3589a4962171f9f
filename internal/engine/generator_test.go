package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always picks the first element and the lower bound of a range.
type fixedSource struct{}

func (fixedSource) IntN(int) int     { return 0 }
func (fixedSource) Float64() float64 { return 0 }

var populated = []Category{CategoryImage, CategoryWorkflow, CategoryAutomation, CategoryCode}

func TestGenerateReturnsExactCount(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), NewSeededSource(42))

	for _, category := range populated {
		for _, specificity := range AllSpecificities() {
			for _, count := range []int{1, 7, 1000} {
				t.Run(fmt.Sprintf("%s/%s/%d", category, specificity, count), func(t *testing.T) {
					prompts, err := g.Generate(category, count, specificity)
					require.NoError(t, err)
					require.Len(t, prompts, count)
					for _, p := range prompts {
						assert.NotEmpty(t, p)
					}
				})
			}
		}
	}
}

func TestGenerateAnalysisFails(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), NewSeededSource(1))

	for _, specificity := range AllSpecificities() {
		prompts, err := g.Generate(CategoryAnalysis, 5, specificity)
		assert.ErrorIs(t, err, ErrUnknownCategory)
		assert.Nil(t, prompts)
		assert.Contains(t, err.Error(), "analysis")
	}
}

func TestGenerateExtremeAlwaysIncludesQuality(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), NewSeededSource(7))

	markers := map[Category]string{
		CategoryImage:      ". Quality requirements: ",
		CategoryWorkflow:   ". Standards: ",
		CategoryAutomation: ". Standards: ",
		CategoryCode:       ". Quality: ",
	}
	for category, marker := range markers {
		prompts, err := g.Generate(category, 200, SpecificityExtreme)
		require.NoError(t, err)
		for _, p := range prompts {
			assert.Contains(t, p, marker, "category %s", category)
		}
	}
}

func TestGenerateLowQualityRate(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), NewSeededSource(2024))

	const n = 1000
	prompts, err := g.Generate(CategoryCode, n, SpecificityLow)
	require.NoError(t, err)

	included := 0
	for _, p := range prompts {
		if strings.Contains(p, ". Quality: ") {
			included++
		}
	}
	rate := float64(included) / n
	assert.InDelta(t, 0.2, rate, 0.06, "observed quality inclusion rate %.3f", rate)
}

func TestSelectionHasNoDuplicates(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), NewSeededSource(99))

	for _, category := range populated {
		tmpl := DefaultCatalog().TemplatesFor(category)[0]
		for _, specificity := range AllSpecificities() {
			ratio := specificity.Ratio()
			for i := 0; i < 200; i++ {
				sel := g.selectFrom(tmpl, ratio)

				assertDistinct(t, sel.modifiers)
				assertDistinct(t, sel.constraints)
				assertDistinct(t, sel.quality)

				assert.GreaterOrEqual(t, len(sel.modifiers), 1)
				assert.Len(t, sel.constraints, int(float64(len(tmpl.Constraints))*ratio))
				if len(sel.quality) > 0 {
					assert.Len(t, sel.quality, max(1, int(float64(len(tmpl.QualityTokens))*qualityShare)))
				}
			}
		}
	}
}

func TestSampleClampsToPopulation(t *testing.T) {
	src := NewSeededSource(3)
	population := []string{"a", "b", "c"}

	got := sample(src, population, 10)
	assert.ElementsMatch(t, population, got)
	assert.Empty(t, sample(src, population, 0))
	assert.Empty(t, sample(src, nil, 2))
	assert.Equal(t, []string{"a", "b", "c"}, population, "input must not be reordered")
}

func TestFormatters(t *testing.T) {
	g := NewGenerator(DefaultCatalog(), fixedSource{})

	tests := []struct {
		name     string
		category Category
		sel      selection
		want     string
	}{
		{
			name:     "image with two modifiers",
			category: CategoryImage,
			sel: selection{
				modifiers:   []string{"cinematic", "muted tones", "vibrant"},
				constraints: []string{"c1", "c2", "c3", "c4"},
				quality:     []string{"HDR", "bokeh"},
			},
			want: "Cinematic, muted tones portrait showcasing the subject. Must preserve: c1, c2, c3. Quality requirements: HDR, bokeh",
		},
		{
			name:     "image single modifier keeps rest lower case",
			category: CategoryImage,
			sel:      selection{modifiers: []string{"high contrast"}},
			want:     "High contrast portrait showcasing the subject",
		},
		{
			name:     "image without modifiers",
			category: CategoryImage,
			want:     "Realistic portrait showcasing the subject",
		},
		{
			name:     "workflow",
			category: CategoryWorkflow,
			sel: selection{
				modifiers:   []string{"scheduled task"},
				constraints: []string{"c1", "c2", "c3", "c4", "c5"},
				quality:     []string{"scalable"},
			},
			want: "Create data ingestion workflow that scheduled task. Requirements: c1, c2, c3, c4. Standards: scalable",
		},
		{
			name:     "automation without modifiers",
			category: CategoryAutomation,
			want:     "Create data ingestion workflow that on trigger",
		},
		{
			name:     "code",
			category: CategoryCode,
			sel: selection{
				modifiers:   []string{"CLI tool"},
				constraints: []string{"input validation"},
				quality:     []string{"readable", "efficient"},
			},
			want: "Write Python CLI tool that parses CSV files. Must include: input validation. Quality: readable, efficient",
		},
		{
			name:     "code without modifiers",
			category: CategoryCode,
			want:     "Write Python function that parses CSV files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.format(tt.category, tt.sel)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("format() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	templates := DefaultCatalog().TemplatesFor(CategoryImage)
	require.Len(t, templates, 1)
	templates[0].Modifiers[0] = "mutated"

	again := DefaultCatalog().TemplatesFor(CategoryImage)
	assert.Equal(t, "photorealistic", again[0].Modifiers[0])

	assert.Empty(t, DefaultCatalog().TemplatesFor(CategoryAnalysis))
	assert.Equal(t, populated, DefaultCatalog().Categories())
}

func TestCatalogVocabularySizes(t *testing.T) {
	sizes := map[Category][3]int{
		CategoryImage:      {12, 8, 10},
		CategoryWorkflow:   {9, 8, 7},
		CategoryAutomation: {8, 8, 6},
		CategoryCode:       {9, 8, 7},
	}
	for category, want := range sizes {
		tmpl := DefaultCatalog().TemplatesFor(category)[0]
		got := [3]int{len(tmpl.Modifiers), len(tmpl.Constraints), len(tmpl.QualityTokens)}
		assert.Equal(t, want, got, "category %s", category)
	}
	assert.Len(t, imageSubjects, 12)
	assert.Len(t, imageActions, 8)
	assert.Len(t, workflowTasks, 9)
	assert.Len(t, codeFunctionality, 9)
}

func assertDistinct(t *testing.T, items []string) {
	t.Helper()
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		assert.False(t, seen[item], "duplicate %q in %v", item, items)
		seen[item] = true
	}
}
