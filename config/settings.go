// Package config loads scene settings from a JSON file, falling back
// to built-in defaults when no file is present.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	Window   WindowSettings  `json:"window"`
	Camera   CameraSettings  `json:"camera"`
	Meshes   MeshSettings    `json:"meshes"`
	Lights   LightSettings   `json:"lights"`
	Textures TextureSettings `json:"textures"`
	Preview  PreviewSettings `json:"preview"`
}

type WindowSettings struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

type CameraSettings struct {
	Position    [3]float32 `json:"position"`
	Speed       float32    `json:"speed"`
	Sensitivity float32    `json:"sensitivity"`
}

type MeshSettings struct {
	CanSectors  int  `json:"canSectors"`
	CanStacks   int  `json:"canStacks"`
	BallSectors int  `json:"ballSectors"`
	BallStacks  int  `json:"ballStacks"`
	Smooth      bool `json:"smooth"`
}

type Light struct {
	Position  [3]float32 `json:"position"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
}

type LightSettings struct {
	Main Light `json:"main"`
	Fill Light `json:"fill"`
}

type TextureSettings struct {
	Plane string `json:"plane"`
	Case  string `json:"case"`
	Logo  string `json:"logo"`
	Can   string `json:"can"`
	Ball  string `json:"ball"`
	Notes string `json:"notes"`
}

type PreviewSettings struct {
	// Port for the websocket mesh preview server; 0 disables it.
	Port int `json:"port"`
}

// Defaults returns the settings used when no settings file exists. The
// layout values reproduce the reference scene.
func Defaults() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1024,
			Height: 768,
			Title:  "Table Scene",
		},
		Camera: CameraSettings{
			Position:    [3]float32{2, 2, 12},
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Meshes: MeshSettings{
			CanSectors:  36,
			CanStacks:   1,
			BallSectors: 36,
			BallStacks:  18,
			Smooth:      true,
		},
		Lights: LightSettings{
			Main: Light{
				Position:  [3]float32{1.5, 2, 10},
				Color:     [3]float32{1, 1, 1},
				Intensity: 1.0,
			},
			Fill: Light{
				Position:  [3]float32{5, 1, -1},
				Color:     [3]float32{1, 1, 0.95},
				Intensity: 0.2,
			},
		},
		Textures: TextureSettings{
			Plane: "images/marble-plane.jpg",
			Case:  "images/case-black.jpg",
			Logo:  "images/case-logo.png",
			Can:   "images/can-label.jpg",
			Ball:  "images/blue-foam.jpg",
			Notes: "images/yellow-paper.jpg",
		},
		Preview: PreviewSettings{Port: 0},
	}
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned. A present but malformed file is an error.
func Load(path string) (Settings, error) {
	s := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}
