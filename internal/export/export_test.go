// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/voxchat-tui/internal/model"
)

func testConversation() *model.Conversation {
	conv := model.NewConversation()
	conv.AddMessage(model.NewUserMessage("Hello there, read this aloud"))
	conv.AddMessage(model.NewAssistantMessage("http://localhost:33000/audio/abc.wav", "Aria"))
	return conv
}

func TestMarkdownExport(t *testing.T) {
	content, err := NewMarkdownExporter(nil).Export(testConversation())
	require.NoError(t, err)

	out := string(content)
	require.Contains(t, out, "Hello there, read this aloud")
	require.Contains(t, out, "[audio](http://localhost:33000/audio/abc.wav)")
	require.Contains(t, out, "(Aria)")
	require.Contains(t, out, "generator: voxchat")
}

func TestMarkdownExportEmptyConversation(t *testing.T) {
	_, err := NewMarkdownExporter(nil).Export(model.NewConversation())
	require.Error(t, err)

	_, err = NewMarkdownExporter(nil).Export(nil)
	require.Error(t, err)
}

func TestJSONExportRoundtrip(t *testing.T) {
	conv := testConversation()
	content, err := NewJSONExporter(nil).Export(conv)
	require.NoError(t, err)

	var decoded model.Conversation
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Equal(t, conv.ID, decoded.ID)
	require.Len(t, decoded.Messages, 2)
	require.Equal(t, "http://localhost:33000/audio/abc.wav", decoded.Messages[1].AudioURL)
}

func TestHTMLExportEscapesAndEmbedsAudio(t *testing.T) {
	conv := model.NewConversation()
	conv.AddMessage(model.NewUserMessage("a <script> tag & friends"))
	conv.AddMessage(model.NewAssistantMessage("http://localhost:33000/audio/x.wav", "Orion"))

	content, err := NewHTMLExporter(nil).Export(conv)
	require.NoError(t, err)

	out := string(content)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "a &lt;script&gt; tag &amp; friends")
	require.Contains(t, out, `<audio controls src="http://localhost:33000/audio/x.wav">`)
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportMarkdown(testConversation(), &Options{
		OutputDir:         dir,
		IncludeMetadata:   true,
		IncludeTimestamps: true,
	})
	require.NoError(t, err)
	require.Equal(t, ".md", filepath.Ext(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "voxchat_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello_world"},
		{"a/b\\c:d", "a-b-c-d"},
		{"", "conversation"},
		{"what? <really>", "what-_-really-"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
