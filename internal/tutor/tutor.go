// Package tutor turns a student's question into a templated explanation.
package tutor

import (
	"go.uber.org/zap"

	"github.com/xaenox/tutor-bot/internal/classifier"
	"github.com/xaenox/tutor-bot/internal/models"
)

type Reply struct {
	Category models.Category `json:"category"`
	Answer   string          `json:"answer"`
}

type Tutor struct {
	classifier classifier.Classifier
	selector   *Selector
	logger     *zap.Logger
}

func New(clf classifier.Classifier, selector *Selector, logger *zap.Logger) *Tutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tutor{
		classifier: clf,
		selector:   selector,
		logger:     logger,
	}
}

// NewDefault wires the keyword classifier to the built-in catalog.
func NewDefault(logger *zap.Logger) *Tutor {
	return New(classifier.NewKeywordClassifier(), NewSelector(DefaultCatalog()), logger)
}

type keywordMatcher interface {
	Match(question string) (models.Category, string)
}

// Answer classifies question and returns the matching template.
//
// history is accepted so callers can pass the conversation they display, but it
// is never read: the answer depends on the question alone.
func (t *Tutor) Answer(question string, history []models.ConversationTurn) Reply {
	var (
		category models.Category
		keyword  string
	)
	if m, ok := t.classifier.(keywordMatcher); ok {
		category, keyword = m.Match(question)
	} else {
		category = t.classifier.Classify(question)
	}

	t.logger.Debug("Question classified",
		zap.String("category", category.String()),
		zap.String("keyword", keyword),
		zap.Int("history_turns", len(history)))

	return Reply{
		Category: category,
		Answer:   t.selector.Respond(category),
	}
}
