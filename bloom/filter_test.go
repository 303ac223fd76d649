package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docshelf/bloom"
	"github.com/stretchr/testify/assert"
)

func TestTermFilter_AddAndMayContain(t *testing.T) {
	t.Parallel()

	f := bloom.NewTermFilter(1000, 0.01)

	// Unknown keys must never be ruled out
	assert.True(t, f.MayContain("go", []string{"goroutines"}))

	f.Add("go", []string{"goroutines", "channels", "select"})

	assert.True(t, f.MayContain("go", []string{"goroutines"}))
	assert.True(t, f.MayContain("go", []string{"channels", "select"}))

	// All terms must be present for a positive answer
	assert.False(t, f.MayContain("go", []string{"goroutines", "decorators"}))
	assert.False(t, f.MayContain("go", []string{"decorators"}))
}

func TestTermFilter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	f := bloom.NewTermFilter(1000, 0.01)

	f.Add("go", []string{"goroutines"})
	f.Add("python", []string{"decorators"})

	assert.True(t, f.MayContain("go", []string{"goroutines"}))
	assert.False(t, f.MayContain("go", []string{"decorators"}))
	assert.True(t, f.MayContain("python", []string{"decorators"}))
	assert.False(t, f.MayContain("python", []string{"goroutines"}))
}

func TestTermFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewTermFilter(1000, 0.01)

	// Unknown key has count 0
	assert.Equal(t, uint(0), f.EstimatedCount("go"))

	f.Add("go", []string{"one", "two", "three"})

	// Estimated count should be approximately 3
	count := f.EstimatedCount("go")
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestTermFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewTermFilter(1000, 0.01)

	f.Add("go", []string{"goroutines"})
	countAfterFirst := f.EstimatedCount("go")

	// Adding the same term repeatedly should not change the filter
	f.Add("go", []string{"goroutines"})
	f.Add("go", []string{"goroutines"})

	assert.Equal(t, countAfterFirst, f.EstimatedCount("go"))
	assert.True(t, f.MayContain("go", []string{"goroutines"}))
}

func TestTermFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numTerms = 10000
		fpRate   = 0.01
		trials   = 10000
	)

	f := bloom.NewTermFilter(numTerms, fpRate)

	terms := make([]string, 0, numTerms)
	for i := range numTerms {
		terms = append(terms, fmt.Sprintf("term%d", i))
	}
	f.Add("go", terms)

	// Query terms that were never added
	falsePositives := 0
	for i := range trials {
		if f.MayContain("go", []string{fmt.Sprintf("absent%d", i)}) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(trials)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
