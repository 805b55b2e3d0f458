package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"

	"tablescene/config"
	"tablescene/rendering/opengl"
	"tablescene/scene"
	"tablescene/server"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "Path to the settings file")
		width        = flag.Int("width", 0, "Window width (overrides settings)")
		height       = flag.Int("height", 0, "Window height (overrides settings)")
		previewPort  = flag.Int("preview", 0, "Mesh preview websocket port (overrides settings)")
		dump         = flag.Bool("dump", false, "Print mesh statistics and exit without opening a window")
	)
	flag.Parse()

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *previewPort > 0 {
		cfg.Preview.Port = *previewPort
	}

	sc, err := scene.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	if *dump {
		dumpMeshes(sc)
		return
	}

	if cfg.Preview.Port > 0 {
		preview := server.NewPreview(sc.Meshes())
		go func() {
			if err := preview.Serve(cfg.Preview.Port); err != nil {
				log.Printf("Preview server stopped: %v", err)
			}
		}()
	}

	renderer, err := opengl.New(cfg, sc)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	defer renderer.Terminate()

	fmt.Println("Controls: WASD/QE move, mouse look, scroll speed, P projection, ESC quit")
	renderer.Run()
}

// dumpMeshes prints per-mesh vertex and triangle counts, for checking
// tessellation settings without a GL context.
func dumpMeshes(sc *scene.Scene) {
	meshes := sc.Meshes()
	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m := meshes[name]
		fmt.Printf("%-12s %6d vertices %6d triangles\n", name, m.VertexCount(), m.TriangleCount())
	}
}
