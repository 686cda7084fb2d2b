// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - recent generation task listing.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/voxchat-tui/internal/api"
	"github.com/jeranaias/voxchat-tui/internal/config"
	"github.com/jeranaias/voxchat-tui/internal/util"
)

// HandleHistory lists the user's recent generation tasks.
func HandleHistory(args Args) error {
	ctx := context.Background()
	app, err := NewAppWithSession(ctx)
	if err != nil {
		return err
	}
	if !app.Store.IsAuthenticated() {
		return fmt.Errorf("not signed in; run 'voxchat login' first")
	}

	items, err := app.Client.History(ctx, historyLimit(args, app.Config))
	if err != nil {
		return fmt.Errorf("failed to fetch history: %s", api.Detail(err, err.Error()))
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(items)
	}

	if len(items) == 0 {
		fmt.Println(MutedStyle.Render("no generation tasks yet"))
		return nil
	}

	fmt.Println(TitleStyle.Render("Recent generations"))
	for _, item := range items {
		status := statusStyle(item.Status).Render(string(item.Status))
		preview := util.TruncateRunes(item.TextExcerpt, 48)
		fmt.Printf("%-11s %s %s\n", status, MutedStyle.Render(item.VoiceID), ValueStyle.Render(preview))
		if item.Status == api.TaskCompleted && item.OutputURL != "" {
			fmt.Printf("            %s\n", MutedStyle.Render(app.Client.AudioURL(item.OutputURL)))
		}
	}
	return nil
}

// historyLimit resolves the entry count: an explicit --limit wins, the
// configured default applies otherwise.
func historyLimit(args Args, cfg *config.Config) int {
	if args.Parser != nil && args.Parser.Flag("limit") != "" {
		return args.Limit
	}
	if cfg != nil && cfg.Generate.HistoryLimit > 0 {
		return cfg.Generate.HistoryLimit
	}
	return args.Limit
}

func statusStyle(s api.TaskState) interface{ Render(...string) string } {
	switch s {
	case api.TaskCompleted:
		return SuccessStyle
	case api.TaskFailed:
		return ErrStyle
	default:
		return WarnStyle
	}
}
