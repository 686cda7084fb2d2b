// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - login, register, logout, whoami command handlers.
//
// Examples:
//   voxchat login                          Prompt for credentials
//   voxchat login --email a@b.c            Prompt only for the password
//   voxchat register --email a@b.c         Create an account
//   voxchat whoami                         Show user and balance
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jeranaias/voxchat-tui/internal/api"
)

// promptCredentials fills in whatever the flags did not supply. The
// password never echoes.
func promptCredentials(email, password string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print(LabelStyle.Render("Email: "))
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	if password == "" {
		if !IsTTY() {
			return "", "", fmt.Errorf("no TTY for password prompt; pass --password or run interactively")
		}
		fmt.Print(LabelStyle.Render("Password: "))
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}

	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}

// HandleLogin signs in and persists the token.
func HandleLogin(args Args) error {
	app, err := NewApp()
	if err != nil {
		return err
	}

	email, password, err := promptCredentials(args.Email, args.Password)
	if err != nil {
		return err
	}

	ctx := context.Background()
	resp, err := app.Client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign-in failed: %s", api.Detail(err, err.Error()))
	}
	if err := app.Store.Login(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("sign-in failed: %s", api.Detail(err, err.Error()))
	}

	user := app.Store.User()
	fmt.Println(SuccessStyle.Render("✓ signed in as " + user.Email))
	if !args.Quiet {
		fmt.Printf("%s %s\n", LabelStyle.Render("Balance:"), ValueStyle.Render(fmt.Sprintf("%d credits", app.Store.Credits())))
	}
	return nil
}

// HandleRegister creates an account, then signs in with it.
func HandleRegister(args Args) error {
	app, err := NewApp()
	if err != nil {
		return err
	}

	email, password, err := promptCredentials(args.Email, args.Password)
	if err != nil {
		return err
	}

	ctx := context.Background()
	profile, err := app.Client.Register(ctx, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %s", api.Detail(err, err.Error()))
	}
	fmt.Println(SuccessStyle.Render("✓ account created: " + profile.Email))

	resp, err := app.Client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("account created but sign-in failed: %s", api.Detail(err, err.Error()))
	}
	if err := app.Store.Login(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("account created but sign-in failed: %s", api.Detail(err, err.Error()))
	}
	fmt.Println(SuccessStyle.Render("✓ signed in"))
	return nil
}

// HandleLogout forgets the token and clears the session.
func HandleLogout(args Args) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	app.Store.Logout()
	fmt.Println(SuccessStyle.Render("✓ signed out"))
	return nil
}

// HandleWhoami shows the signed-in user and the live balance.
func HandleWhoami(args Args) error {
	ctx := context.Background()
	app, err := NewAppWithSession(ctx)
	if err != nil {
		return err
	}

	user := app.Store.User()
	if user == nil {
		fmt.Println(MutedStyle.Render("not signed in (voxchat login)"))
		return nil
	}

	if args.JSON {
		fmt.Printf("{\"email\": %q, \"name\": %q, \"plan\": %q, \"credits\": %d}\n",
			user.Email, user.Name, user.Plan, app.Store.Credits())
		return nil
	}

	fmt.Printf("%s %s\n", LabelStyle.Render("User:"), ValueStyle.Render(user.Name))
	fmt.Printf("%s %s\n", LabelStyle.Render("Email:"), ValueStyle.Render(user.Email))
	fmt.Printf("%s %s\n", LabelStyle.Render("Plan:"), ValueStyle.Render(user.Plan))
	fmt.Printf("%s %s\n", LabelStyle.Render("Credits:"), ValueStyle.Render(fmt.Sprintf("%d", app.Store.Credits())))
	return nil
}
