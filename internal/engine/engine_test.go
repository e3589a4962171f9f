package engine

import (
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEngineConcurrentUse(t *testing.T) {
	e := New()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			category := []Category{CategoryImage, CategoryWorkflow, CategoryAutomation, CategoryCode}[i%4]
			prompts, err := e.Generate(category, 50, SpecificityHigh)
			if err != nil {
				errs <- err
				return
			}
			if len(prompts) != 50 {
				errs <- assert.AnError
			}
			_ = e.Optimize("make my hair a bowl cut", "")
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestEngineWithCatalog(t *testing.T) {
	catalog := NewCatalog(Template{
		Category:      CategoryAnalysis,
		Modifiers:     []string{"trend"},
		Constraints:   []string{"cite sources"},
		QualityTokens: []string{"rigorous"},
	})
	e := New(WithCatalog(catalog), WithSource(NewSeededSource(1)))

	_, err := e.Generate(CategoryImage, 1, SpecificityLow)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// Analysis has templates here but no formatter, so generation still fails.
	_, err = e.Generate(CategoryAnalysis, 1, SpecificityLow)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), "has no formatter")
}

func TestParseEnums(t *testing.T) {
	c, err := ParseCategory("automation")
	require.NoError(t, err)
	assert.Equal(t, CategoryAutomation, c)

	_, err = ParseCategory("Image")
	assert.Error(t, err)

	s, err := ParseSpecificity("extreme")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Ratio())

	_, err = ParseSpecificity("ultra")
	assert.Error(t, err)

	assert.Equal(t, []float64{0.2, 0.5, 0.8, 1.0}, []float64{
		SpecificityLow.Ratio(), SpecificityMedium.Ratio(), SpecificityHigh.Ratio(), SpecificityExtreme.Ratio(),
	})
}
