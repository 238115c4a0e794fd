// ABOUTME: Request/response bodies exchanged with the Q&A chat server
// ABOUTME: Decoded with easyjson; a nil ChatHistory means the field was absent

package api

//go:generate easyjson -all wire.go

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AutocompleteResponse is the body of GET /autocomplete.
type AutocompleteResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message  string `json:"message"`
	ForceLLM bool   `json:"force_llm,omitempty"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response          string   `json:"response"`
	FullHistory       []string `json:"full_history"`
	NoQnAMatch        bool     `json:"no_qna_match"`
	LastQuestion      string   `json:"last_question"`
	NoQnAMatchMessage string   `json:"no_qna_match_message"`
}

// UploadResponse is the body returned by POST /upload.
type UploadResponse struct {
	Content     string   `json:"content"`
	ChatHistory []string `json:"chatHistory,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// HasChatHistory reports whether the server sent a chatHistory field.
func (r *UploadResponse) HasChatHistory() bool {
	return r.ChatHistory != nil
}

// StatusResponse is the body returned by the clear endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the server acknowledged the operation.
func (r *StatusResponse) OK() bool {
	return r.Status == "success"
}
