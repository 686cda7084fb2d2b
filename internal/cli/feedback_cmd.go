// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// feedback_cmd.go - sends user feedback to the backend.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/voxchat-tui/internal/api"
)

// HandleFeedback submits a feedback message.
func HandleFeedback(args Args) error {
	message := strings.TrimSpace(args.Text)
	if message == "" {
		return fmt.Errorf("feedback message required: voxchat feedback \"your message\"")
	}

	ctx := context.Background()
	app, err := NewAppWithSession(ctx)
	if err != nil {
		return err
	}
	if !app.Store.IsAuthenticated() {
		return fmt.Errorf("not signed in; run 'voxchat login' first")
	}

	resp, err := app.Client.SubmitFeedback(ctx, message, args.Contact)
	if err != nil {
		return fmt.Errorf("failed to send feedback: %s", api.Detail(err, err.Error()))
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(resp)
	}
	fmt.Printf("%s feedback sent (id %s)\n", SuccessStyle.Render("✓"), resp.ID)
	return nil
}
