package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"dockspace/internal/panels"
	"dockspace/internal/telemetry"
	"dockspace/internal/ui"
)

func main() {
	layoutPath := flag.String("layout", defaultLayoutPath(), "path of the persisted layout file")
	shell := flag.String("shell", "", "shell for the console panel (default $SHELL)")
	flag.Parse()

	// Stdlib log output would corrupt the alternate screen; engine messages
	// go to the log panel instead, anything else is discarded.
	log.SetOutput(io.Discard)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry setup: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	model, err := ui.NewWorkspace(ui.Options{
		LayoutPath: *layoutPath,
		Shell:      *shell,
		Scene:      sampleScene(),
		Properties: sampleProperties(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultLayoutPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dockspace-layout.json"
	}
	return filepath.Join(dir, "dockspace", "layout.json")
}

func sampleScene() []panels.Entity {
	return []panels.Entity{
		{Name: "camera", Kind: "Camera"},
		{Name: "sun", Kind: "DirectionalLight"},
		{Name: "player", Kind: "Mesh"},
		{Name: "terrain", Kind: "Mesh"},
		{Name: "music", Kind: "AudioSource"},
	}
}

func sampleProperties() map[string][]panels.Property {
	return map[string][]panels.Property{
		"camera": {
			{Name: "fov", Value: float64(60)},
			{Name: "near", Value: 0.1},
			{Name: "far", Value: float64(1000)},
		},
		"sun": {
			{Name: "intensity", Value: 1.2},
			{Name: "shadows", Value: true},
		},
		"player": {
			{Name: "mesh", Value: "player.glb"},
			{Name: "position", Value: []any{float64(0), 1.5, float64(-3)}},
		},
		"terrain": {
			{Name: "mesh", Value: "terrain.glb"},
			{Name: "static", Value: true},
		},
		"music": {
			{Name: "clip", Value: "ambient.ogg"},
			{Name: "volume", Value: 0.8},
			{Name: "looping", Value: true},
		},
	}
}
