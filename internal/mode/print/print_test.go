// ABOUTME: Tests for headless print mode covering text and JSON output, --llm and --suggest
// ABOUTME: Uses a fake client to simulate server responses without network calls

package print

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/qnachat/internal/api"
)

// fakeClient replays canned responses and records requests.
type fakeClient struct {
	chatResp *api.ChatResponse
	chatErr  error
	chats    []api.ChatRequest

	suggestions []api.Suggestion
	queries     []string
	limits      []int
}

func (f *fakeClient) Autocomplete(_ context.Context, q string, limit int) ([]api.Suggestion, error) {
	f.queries = append(f.queries, q)
	f.limits = append(f.limits, limit)
	return f.suggestions, nil
}

func (f *fakeClient) Chat(_ context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	f.chats = append(f.chats, req)
	return f.chatResp, f.chatErr
}

func streams(in string) (Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Streams{In: strings.NewReader(in), Out: &out, Err: &errOut}, &out, &errOut
}

func TestRun_TextAnswerStripsHTML(t *testing.T) {
	c := &fakeClient{chatResp: &api.ChatResponse{Response: `<span style="color: green;">Hold the button.</span>`}}
	s, out, errOut := streams("")

	if err := Run(context.Background(), Config{}, c, "how do I reset?", s); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := out.String(); got != "Hold the button.\n" {
		t.Errorf("output = %q", got)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
	if len(c.chats) != 1 || c.chats[0].Message != "how do I reset?" || c.chats[0].ForceLLM {
		t.Errorf("requests = %+v", c.chats)
	}
}

func TestRun_NoMatchHint(t *testing.T) {
	c := &fakeClient{chatResp: &api.ChatResponse{Response: "No relevant Q&A pairs found", NoQnAMatch: true}}

	s, _, errOut := streams("")
	if err := Run(context.Background(), Config{}, c, "q", s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut.String(), "--llm") {
		t.Errorf("stderr = %q; want --llm hint", errOut.String())
	}

	s, _, errOut = streams("")
	if err := Run(context.Background(), Config{ForceLLM: true}, c, "q", s); err != nil {
		t.Fatal(err)
	}
	if errOut.Len() != 0 {
		t.Errorf("forced run printed hint: %q", errOut.String())
	}
	if !c.chats[1].ForceLLM {
		t.Error("ForceLLM not sent")
	}
}

func TestRun_JSONAnswer(t *testing.T) {
	c := &fakeClient{chatResp: &api.ChatResponse{
		Response:     "It floats.",
		FullHistory:  []string{"Human: does it float?", "AI: It floats."},
		LastQuestion: "does it float?",
	}}
	s, out, _ := streams("")

	if err := Run(context.Background(), Config{OutputFormat: FormatJSON}, c, "does it float?", s); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if got["response"] != "It floats." {
		t.Errorf("response = %v", got["response"])
	}
	if hist, ok := got["full_history"].([]any); !ok || len(hist) != 2 {
		t.Errorf("full_history = %v", got["full_history"])
	}
}

func TestRun_Suggest(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"text", FormatText, "how do I reset?\nhow do I pair?\n"},
		{"json", FormatJSON, `{"suggestions":[{"question":"how do I reset?","answer":"Hold it."},{"question":"how do I pair?","answer":""}]}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{suggestions: []api.Suggestion{
				{Question: "how do I reset?", Answer: "Hold it."},
				{Question: "how do I pair?"},
			}}
			s, out, _ := streams("")
			if err := Run(context.Background(), Config{Suggest: true, OutputFormat: tt.format}, c, "how", s); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q; want %q", out.String(), tt.want)
			}
			if len(c.limits) != 1 || c.limits[0] != 8 {
				t.Errorf("limits = %v; want default 8", c.limits)
			}
			if len(c.chats) != 0 {
				t.Error("--suggest sent a chat request")
			}
		})
	}
}

func TestRun_SuggestJSONEmpty(t *testing.T) {
	s, out, _ := streams("")
	if err := Run(context.Background(), Config{Suggest: true, OutputFormat: FormatJSON, Limit: 3}, &fakeClient{}, "zzz", s); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != `{"suggestions":[]}` {
		t.Errorf("output = %q", got)
	}
}

func TestRun_PromptFromStdin(t *testing.T) {
	c := &fakeClient{chatResp: &api.ChatResponse{Response: "ok"}}
	s, _, _ := streams("  piped question \n")
	if err := Run(context.Background(), Config{}, c, "", s); err != nil {
		t.Fatal(err)
	}
	if c.chats[0].Message != "piped question" {
		t.Errorf("message = %q", c.chats[0].Message)
	}
}

func TestRun_Errors(t *testing.T) {
	s, _, _ := streams("   ")
	if err := Run(context.Background(), Config{}, &fakeClient{}, "", s); err == nil {
		t.Error("empty prompt error = nil")
	}

	boom := errors.New("connection refused")
	s, _, _ = streams("")
	err := Run(context.Background(), Config{}, &fakeClient{chatErr: boom}, "q", s)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v; want wrapped %v", err, boom)
	}
}
