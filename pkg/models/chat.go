package models

// ConversationTurn is one message in a chat session. Only the most recent
// turns are forwarded to the model as context.
type ConversationTurn struct {
	Sender   string `json:"sender"` // "user" or "assistant"
	Text     string `json:"text"`
	Language string `json:"language,omitempty"` // "en" or "hi"
}

type ChatRequest struct {
	Message             string             `json:"message"`
	Language            string             `json:"language"`
	ConversationHistory []ConversationTurn `json:"conversationHistory"`
}

type RecommendationRequest struct {
	UserQuery string `json:"userQuery"`
	Query     string `json:"query"`
	Language  string `json:"language"`
}

// SearchQuery returns userQuery with query as the legacy fallback key.
func (r RecommendationRequest) SearchQuery() string {
	if r.UserQuery != "" {
		return r.UserQuery
	}
	return r.Query
}
