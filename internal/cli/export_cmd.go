// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - conversation transcript export.
package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/voxchat-tui/internal/export"
	"github.com/jeranaias/voxchat-tui/internal/model"
)

// HandleExport writes conversation transcripts to disk. By default the
// current conversation is exported; --all exports every stored one.
func HandleExport(args Args) error {
	ctx := context.Background()
	app, err := NewAppWithSession(ctx)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	if dir := args.Parser.Flag("out"); dir != "" {
		opts.OutputDir = dir
	}

	format := args.Parser.FlagOrDefault("format", "md")
	var exporter export.Exporter
	switch format {
	case "md", "markdown":
		exporter = export.NewMarkdownExporter(opts)
	case "json":
		exporter = export.NewJSONExporter(opts)
	case "html":
		exporter = export.NewHTMLExporter(opts)
	default:
		return fmt.Errorf("unknown format %q (want md, json, or html)", format)
	}

	var convs []*model.Conversation
	if args.Parser.BoolFlag("all") {
		convs = app.Store.Conversations()
	} else if conv := app.Store.CurrentConversation(); conv != nil {
		convs = []*model.Conversation{conv}
	}
	if len(convs) == 0 {
		return fmt.Errorf("nothing to export; start a conversation first")
	}

	for _, conv := range convs {
		if conv.IsEmpty() {
			continue
		}
		path, err := export.ExportToFile(conv, exporter, opts)
		if err != nil {
			return fmt.Errorf("export %q: %w", conv.Title, err)
		}
		fmt.Printf("%s exported %s\n", SuccessStyle.Render("✓"), path)
	}
	return nil
}
