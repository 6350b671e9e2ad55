package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/tutor-bot/internal/models"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     models.Category
	}{
		{"math keyword", "How do I solve this algebra equation?", models.CategoryMath},
		{"science keyword", "What is photosynthesis in biology?", models.CategoryScience},
		{"history keyword", "Tell me about the French Revolution", models.CategoryHistory},
		{"language keyword", "How do I fix my grammar?", models.CategoryLanguage},
		{"study tips keyword", "Any tips for my exam?", models.CategoryStudyTips},
		{"no keyword", "What's your favorite color?", models.CategoryGeneral},
		{"empty", "", models.CategoryGeneral},
		{"math beats science", "calculate the energy of a reaction", models.CategoryMath},
		{"science beats study tips", "study the cell", models.CategoryScience},
		{"math beats history", "history of math", models.CategoryMath},
		{"substring inside word", "what happened in the aftermath", models.CategoryMath},
		{"substring war in software", "which software should I use", models.CategoryHistory},
		{"upper case", "ALGEBRA homework", models.CategoryMath},
		{"mixed case", "PhYsIcS question", models.CategoryScience},
	}

	c := NewKeywordClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.question))
		})
	}
}

func TestKeywordClassifier_CaseInsensitive(t *testing.T) {
	c := NewKeywordClassifier()
	assert.Equal(t, c.Classify("algebra homework"), c.Classify("ALGEBRA homework"))
}

func TestKeywordClassifier_Totality(t *testing.T) {
	c := NewKeywordClassifier()
	inputs := []string{"x", "???", "日本語の質問", "\n\t", "12345", "solve", "war and peace"}
	for _, in := range inputs {
		assert.True(t, c.Classify(in).Valid(), "input %q", in)
	}
}

func TestKeywordClassifier_Match(t *testing.T) {
	c := NewKeywordClassifier()

	cat, kw := c.Match("Can you help me calculate this?")
	assert.Equal(t, models.CategoryMath, cat)
	assert.Equal(t, "calculate", kw)

	cat, kw = c.Match("hello there")
	assert.Equal(t, models.CategoryGeneral, cat)
	assert.Empty(t, kw)
}

func TestDefaultRules_Order(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 5)

	want := []models.Category{
		models.CategoryMath,
		models.CategoryScience,
		models.CategoryHistory,
		models.CategoryLanguage,
		models.CategoryStudyTips,
	}
	for i, r := range rules {
		assert.Equal(t, want[i], r.Category)
		assert.NotEmpty(t, r.Keywords)
	}
}

func TestDefaultRules_ReturnsCopy(t *testing.T) {
	rules := DefaultRules()
	rules[0].Keywords[0] = "mutated"

	c := NewKeywordClassifier()
	assert.Equal(t, models.CategoryMath, c.Classify("math"))
	assert.Equal(t, "math", DefaultRules()[0].Keywords[0])
}
