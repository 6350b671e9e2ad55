package models

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn represents one exchanged message in a chat session
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func UserTurn(content string) ConversationTurn {
	return ConversationTurn{Role: RoleUser, Content: content}
}

func AssistantTurn(content string) ConversationTurn {
	return ConversationTurn{Role: RoleAssistant, Content: content}
}

// Category is the subject bucket a question is sorted into
type Category string

const (
	CategoryMath      Category = "math"
	CategoryScience   Category = "science"
	CategoryHistory   Category = "history"
	CategoryLanguage  Category = "language"
	CategoryStudyTips Category = "study_tips"
	CategoryGeneral   Category = "general"
)

// Categories returns every category in classification priority order.
// General is last because it is the fallback.
func Categories() []Category {
	return []Category{
		CategoryMath,
		CategoryScience,
		CategoryHistory,
		CategoryLanguage,
		CategoryStudyTips,
		CategoryGeneral,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMath, CategoryScience, CategoryHistory,
		CategoryLanguage, CategoryStudyTips, CategoryGeneral:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
