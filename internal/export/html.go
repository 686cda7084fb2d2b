// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/jeranaias/voxchat-tui/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports conversations to a standalone HTML page. Assistant
// messages render as inline audio players so the transcript is playable in
// a browser.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a conversation to HTML format.
func (e *HTMLExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	if len(conv.Messages) == 0 {
		return nil, fmt.Errorf("conversation has no messages")
	}

	var sb strings.Builder

	title := html.EscapeString(conv.Title)
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", title))
	sb.WriteString("<style>\n")
	sb.WriteString(htmlStyles)
	sb.WriteString("</style>\n</head>\n<body>\n")

	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", title))
	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("<p class=\"meta\">%s &middot; %d messages</p>\n",
			formatTimestamp(conv.CreatedAt), len(conv.Messages)))
	}

	for _, msg := range conv.Messages {
		sb.WriteString(e.renderMessage(msg))
	}

	sb.WriteString("</body>\n</html>\n")
	return []byte(sb.String()), nil
}

func (e *HTMLExporter) renderMessage(msg *model.Message) string {
	var sb strings.Builder

	class := "user"
	label := msg.Role.DisplayName()
	if msg.Role == model.RoleAssistant {
		class = "assistant"
		if msg.VoiceName != "" {
			label = fmt.Sprintf("%s (%s)", label, msg.VoiceName)
		}
	}

	sb.WriteString(fmt.Sprintf("<div class=\"msg %s\">\n", class))
	if e.options.IncludeTimestamps {
		sb.WriteString(fmt.Sprintf("<div class=\"label\">%s <span class=\"time\">%s</span></div>\n",
			html.EscapeString(label), formatShortTimestamp(msg.Timestamp)))
	} else {
		sb.WriteString(fmt.Sprintf("<div class=\"label\">%s</div>\n", html.EscapeString(label)))
	}

	switch msg.Role {
	case model.RoleAssistant:
		if msg.AudioURL != "" {
			url := html.EscapeString(msg.AudioURL)
			sb.WriteString(fmt.Sprintf("<audio controls src=\"%s\"></audio>\n", url))
			sb.WriteString(fmt.Sprintf("<div class=\"link\"><a href=\"%s\">%s</a></div>\n", url, url))
		} else {
			sb.WriteString("<p class=\"missing\">no audio</p>\n")
		}
	default:
		content := html.EscapeString(strings.TrimSpace(msg.Content))
		content = strings.ReplaceAll(content, "\n", "<br>\n")
		sb.WriteString(fmt.Sprintf("<p>%s</p>\n", content))
	}

	sb.WriteString("</div>\n")
	return sb.String()
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

const htmlStyles = `body {
  font-family: -apple-system, "Segoe UI", sans-serif;
  max-width: 720px;
  margin: 2rem auto;
  padding: 0 1rem;
  background: #16161e;
  color: #e4e4ef;
}
h1 { font-size: 1.4rem; }
.meta { color: #8888a0; font-size: 0.85rem; }
.msg { margin: 1.2rem 0; padding: 0.8rem 1rem; border-radius: 8px; }
.msg.user { background: #2b2b3d; }
.msg.assistant { background: #1e2a26; }
.label { font-weight: 600; font-size: 0.85rem; margin-bottom: 0.4rem; }
.time { color: #8888a0; font-weight: 400; }
.link { font-size: 0.75rem; word-break: break-all; margin-top: 0.3rem; }
.link a { color: #7f9cf5; }
.missing { color: #8888a0; font-style: italic; }
audio { width: 100%; }
`
