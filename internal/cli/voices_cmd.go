// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// voices_cmd.go - voice catalog listing.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/voxchat-tui/internal/model"
)

// HandleVoices lists the voice catalog, marking the current selection.
func HandleVoices(args Args) error {
	ctx := context.Background()
	app, err := NewAppWithSession(ctx)
	if err != nil {
		return err
	}

	if err := app.Store.LoadVoices(ctx); err != nil {
		return fmt.Errorf("failed to fetch voices: %w", err)
	}
	voices := app.Store.Voices()

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(voices)
	}

	if len(voices) == 0 {
		fmt.Println(MutedStyle.Render("no voices available"))
		return nil
	}

	fmt.Println(TitleStyle.Render("Voices"))
	selected := app.Store.SelectedVoice()
	for _, v := range voices {
		marker := "  "
		if selected != nil && selected.ID == v.ID {
			marker = SuccessStyle.Render("✓ ")
		}
		category := MutedStyle.Render(v.Category.DisplayName())
		fmt.Printf("%s%-20s %s\n", marker, ValueStyle.Render(v.Name), category)
		if args.Verbose && v.Transcript != "" {
			fmt.Printf("    %s\n", MutedStyle.Render("“"+v.Transcript+"”"))
		}
	}
	return nil
}

// selectVoiceByName finds a catalog voice by case-insensitive name.
func selectVoiceByName(voices []model.Voice, name string) *model.Voice {
	for i := range voices {
		if strings.EqualFold(voices[i].Name, name) {
			return &voices[i]
		}
	}
	return nil
}
