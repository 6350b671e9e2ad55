package classifier

import (
	"strings"

	"github.com/xaenox/tutor-bot/internal/models"
)

type Classifier interface {
	Classify(question string) models.Category
}

// Rule ties a category to the keywords that select it.
type Rule struct {
	Category models.Category
	Keywords []string
}

// Priority order matters: the first rule with a matching keyword wins.
var defaultRules = []Rule{
	{models.CategoryMath, []string{"math", "calculate", "solve", "equation", "algebra", "geometry", "trigonometry", "calculus"}},
	{models.CategoryScience, []string{"science", "physics", "chemistry", "biology", "atom", "cell", "energy", "force", "molecule"}},
	{models.CategoryHistory, []string{"history", "historical", "war", "ancient", "revolution", "civilization"}},
	{models.CategoryLanguage, []string{"grammar", "writing", "essay", "sentence", "paragraph", "punctuation", "spelling"}},
	{models.CategoryStudyTips, []string{"study", "learn", "memorize", "exam", "test", "homework", "focus", "concentrate"}},
}

// DefaultRules returns a copy of the built-in rule list in priority order.
// General has no rule; it is what Classify falls back to.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	for i, r := range defaultRules {
		out[i] = Rule{
			Category: r.Category,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return out
}

type KeywordClassifier struct {
	rules    []Rule
	fallback models.Category
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		rules:    DefaultRules(),
		fallback: models.CategoryGeneral,
	}
}

// Classify lower-cases the question and returns the category of the first rule
// whose keyword occurs anywhere in it, or General.
func (c *KeywordClassifier) Classify(question string) models.Category {
	category, _ := c.Match(question)
	return category
}

// Match is Classify plus the keyword that decided it. The keyword is empty when
// the question fell through to General.
func (c *KeywordClassifier) Match(question string) (models.Category, string) {
	content := strings.ToLower(question)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(content, keyword) {
				return rule.Category, keyword
			}
		}
	}
	return c.fallback, ""
}

var _ Classifier = (*KeywordClassifier)(nil)
