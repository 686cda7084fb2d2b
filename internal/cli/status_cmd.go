// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status_cmd.go - backend health and host resource display.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// HandleStatus shows backend service health and host resources.
func HandleStatus(args Args) error {
	ctx := context.Background()
	app, err := NewApp()
	if err != nil {
		return err
	}

	if args.JSON {
		services, err := app.Client.ServiceStatus(ctx)
		if err != nil {
			return fmt.Errorf("service status: %w", err)
		}
		system, sysErr := app.Client.SystemStatus(ctx)
		out := map[string]interface{}{"services": services}
		if sysErr == nil {
			out["system"] = system
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(TitleStyle.Render("voxchat status"))
	fmt.Printf("%s %s\n", LabelStyle.Render("Backend:"), ValueStyle.Render(app.Client.BaseURL()))

	services, err := app.Client.ServiceStatus(ctx)
	if err != nil {
		fmt.Println(ErrStyle.Render("✗ backend unreachable: " + err.Error()))
		return nil
	}

	printService := func(name string, up bool) {
		if up {
			fmt.Printf("  %s %s\n", SuccessStyle.Render("●"), ValueStyle.Render(name))
			return
		}
		fmt.Printf("  %s %s\n", ErrStyle.Render("●"), MutedStyle.Render(name+" (down)"))
	}
	printService("api", services.Backend)
	printService("tts engine", services.TTSEngine)
	printService("database", services.Database)

	system, err := app.Client.SystemStatus(ctx)
	if err != nil {
		fmt.Println(WarnStyle.Render("resource metrics unavailable: " + err.Error()))
		return nil
	}

	fmt.Println()
	fmt.Printf("%s %.0f%%\n", LabelStyle.Render("CPU:"), system.CPUPercent)
	fmt.Printf("%s %.1f / %.1f GB (%.0f%%)\n", LabelStyle.Render("Memory:"),
		system.MemoryUsedGB, system.MemoryTotalGB, system.MemoryPercent)
	fmt.Printf("%s %.1f / %.1f GB (%.0f%%)\n", LabelStyle.Render("Disk:"),
		system.DiskUsedGB, system.DiskTotalGB, system.DiskPercent)

	if system.GPUAvailable {
		for _, gpu := range system.GPUInfo {
			fmt.Printf("%s %s %.0f%% util, %.0f°C, %.0f/%.0f MB\n",
				LabelStyle.Render("GPU:"), ValueStyle.Render(gpu.Name),
				gpu.Utilization, gpu.Temperature, gpu.MemoryUsedMB, gpu.MemoryTotalMB)
		}
	} else {
		fmt.Printf("%s %s\n", LabelStyle.Render("GPU:"), MutedStyle.Render("none"))
	}
	return nil
}
