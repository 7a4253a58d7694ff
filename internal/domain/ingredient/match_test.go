package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"chicken", "breast", "boneless"}, Tokenize("Chicken Breast (boneless)"))
	assert.Equal(t, []string{"olive", "oil"}, Tokenize("olive, oil"))
	assert.Empty(t, Tokenize("a of in")) // all tokens too short
	assert.Empty(t, Tokenize(""))
}

func TestMatchExactTakesPriority(t *testing.T) {
	candidates := []string{"chicken", "chicken breast"}
	idx := Match("chicken", candidates)
	require.Equal(t, 0, idx, "exact match must win over substring match")

	idx = Match("Chicken Breast", candidates)
	assert.Equal(t, 1, idx)
}

func TestMatchAllTokensContained(t *testing.T) {
	candidates := []string{"olive oil", "boneless chicken breast fillet"}
	assert.Equal(t, 1, Match("chicken breast", candidates))
}

func TestMatchAnyLongToken(t *testing.T) {
	// Only "breast" appears in the candidate; tier 2 fails, tier 3 hits.
	candidates := []string{"turkey breast"}
	assert.Equal(t, 0, Match("chicken breast", candidates))
}

func TestMatchBidirectionalContainment(t *testing.T) {
	// "egg" tokens are all ≤3 chars after filtering... "egg" is 3 chars, so
	// it is dropped by tokenization and only tier 4 containment can hit.
	candidates := []string{"egg"}
	assert.Equal(t, 0, Match("egg", candidates))       // tier 1
	assert.Equal(t, 0, Match("large egg", candidates)) // tier 4 reverse containment
}

func TestMatchNoMatch(t *testing.T) {
	assert.Equal(t, -1, Match("zzz", []string{"chicken", "flour", "milk"}))
	assert.Equal(t, -1, Match("", []string{"chicken"}))
	assert.Equal(t, -1, Match("saffron", nil))
}

func TestMatchFreeTextAgainstCatalogSpelling(t *testing.T) {
	candidates := []string{"milk", "chicken breast", "all-purpose flour"}
	assert.Equal(t, 1, Match("boneless chicken breast", candidates))
	assert.Equal(t, 0, Match("whole milk", candidates))
	assert.Equal(t, 2, Match("flour", candidates))
}

func TestFindMatch(t *testing.T) {
	catalog := []Ingredient{
		{Name: "Chicken Breast", Category: CategoryProteins},
		{Name: "Whole Milk", Category: CategoryDairy},
	}

	got := FindMatch("boneless chicken breast", catalog)
	require.NotNil(t, got)
	assert.Equal(t, "Chicken Breast", got.Name)

	assert.Nil(t, FindMatch("saffron", catalog))
}
