// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewThemeInitializesStyles(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Spot-check a few styles actually got configured.
	if !theme.HeaderTitle.GetBold() {
		t.Error("HeaderTitle should be bold")
	}
	if !theme.ListItemActive.GetBold() {
		t.Error("ListItemActive should be bold")
	}
	if theme.UserBubble.GetMarginLeft() != 4 {
		t.Errorf("UserBubble margin = %d, want 4", theme.UserBubble.GetMarginLeft())
	}
	if theme.AssistantBubble.GetMarginRight() != 4 {
		t.Errorf("AssistantBubble margin = %d, want 4", theme.AssistantBubble.GetMarginRight())
	}
}

func TestNewThemeWithMode(t *testing.T) {
	if theme := NewThemeWithMode("dark"); !theme.IsDark {
		t.Error("dark mode should set IsDark")
	}
	if theme := NewThemeWithMode("light"); theme.IsDark {
		t.Error("light mode should clear IsDark")
	}
	// Unknown values fall back to detection instead of failing.
	if theme := NewThemeWithMode("solarized"); theme == nil {
		t.Error("unknown mode should still build a theme")
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestAdaptiveColorsDefined(t *testing.T) {
	colors := map[string]struct{ light, dark string }{
		"Purple":  {Purple.Light, Purple.Dark},
		"Cyan":    {Cyan.Light, Cyan.Dark},
		"Rose":    {Rose.Light, Rose.Dark},
		"Emerald": {Emerald.Light, Emerald.Dark},
	}
	for name, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s missing a variant: light=%q dark=%q", name, c.light, c.dark)
		}
	}
}
