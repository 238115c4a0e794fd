// ABOUTME: HTML exporter for chat transcripts using Go html/template
// ABOUTME: Renders messages as a styled page with role badges; server markup is stripped and escaped

package export

import (
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/mauromedda/qnachat/internal/render"
	"github.com/mauromedda/qnachat/internal/transcript"
)

// IsHTMLPath reports whether path asks for an HTML export.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ExportHTML renders messages as a styled HTML document to w.
// User (blue), AI (green), System (gray). Messages that offered the LLM
// fallback carry a "no match" marker.
func ExportHTML(messages []transcript.Message, server string, w io.Writer) error {
	return htmlTmpl.Execute(w, page{
		Server:   server,
		Exported: time.Now().Format(time.RFC1123),
		Messages: messages,
	})
}

type page struct {
	Server   string
	Exported string
	Messages []transcript.Message
}

// roleClass maps a message role to a CSS class name.
func roleClass(role transcript.Role) string {
	switch role {
	case transcript.User:
		return "user"
	case transcript.Assistant, transcript.AssistantFallbackSource:
		return "assistant"
	default:
		return "system"
	}
}

// body strips server markup, escapes the rest and keeps line breaks.
func body(s string) template.HTML {
	escaped := template.HTMLEscapeString(render.StripHTML(s))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}

var funcMap = template.FuncMap{
	"roleClass": roleClass,
	"body":      body,
}

var htmlTmpl = template.Must(template.New("transcript").Funcs(funcMap).Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Chat Transcript</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    background: #1e1e2e;
    color: #cdd6f4;
    font-family: 'SF Mono', 'Cascadia Code', 'Fira Code', monospace;
    font-size: 14px;
    line-height: 1.6;
    padding: 24px;
    max-width: 900px;
    margin: 0 auto;
  }
  .message {
    margin-bottom: 16px;
    padding: 12px 16px;
    border-radius: 8px;
    border-left: 4px solid;
  }
  .message.user {
    border-left-color: #89b4fa;
    background: #1e1e2e;
  }
  .message.assistant {
    border-left-color: #a6e3a1;
    background: #1e1e2e;
  }
  .message.system {
    border-left-color: #9399b2;
    background: #1e1e2e;
  }
  .role-badge {
    display: inline-block;
    font-size: 11px;
    font-weight: 600;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    padding: 2px 8px;
    border-radius: 4px;
    margin-bottom: 8px;
  }
  .user .role-badge { background: #89b4fa22; color: #89b4fa; }
  .assistant .role-badge { background: #a6e3a122; color: #a6e3a1; }
  .system .role-badge { background: #9399b222; color: #9399b2; }
  .content-block { margin-top: 8px; }
  .no-match {
    color: #f9e2af;
    font-size: 12px;
    margin-top: 8px;
  }
  header {
    color: #9399b2;
    font-size: 12px;
    margin-bottom: 24px;
  }
</style>
</head>
<body>
<header>{{ if .Server }}{{ .Server }} · {{ end }}exported {{ .Exported }}</header>
{{- range .Messages }}
<div class="message {{ roleClass .Role }}">
  <span class="role-badge">{{ .Role.Label }}</span>
  <div class="content-block">{{ body .Text }}</div>
  {{- if .ShowFallbackAction }}
  <div class="no-match">No Q&amp;A match for: {{ .FallbackQuestion }}</div>
  {{- end }}
</div>
{{- end }}
</body>
</html>
`
