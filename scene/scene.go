// Package scene assembles the table scene: meshes, model transforms,
// texture assignments, and the two lights.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"tablescene/config"
	"tablescene/geom"
)

// Object is one drawable in the scene.
type Object struct {
	Name    string
	Mesh    *geom.Mesh
	Texture string // texture file path; unused for lamps
	// Model is the composed scale/rotation/translation transform. For
	// lamp markers it holds scale and rotation only; the renderer
	// translates them to the live light position each frame.
	Model mgl32.Mat4
	// LightIndex is the index into Scene.Lights for lamp markers, -1
	// otherwise.
	LightIndex int
}

// Lamp reports whether the object is a light marker.
func (o Object) Lamp() bool { return o.LightIndex >= 0 }

// Light is a point light in the Phong model.
type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	// Orbit makes the light revolve around the scene's Y axis.
	Orbit bool
}

// Scene is the full static scene description handed to the renderer.
type Scene struct {
	Objects []Object
	Lights  []Light
}

// The scene's fixed layout. The whole arrangement is tilted 30 degrees
// about a mostly-vertical axis so the camera's opening view looks onto
// the table corner.
var tableTilt = mgl32.HomogRotate3D(mgl32.DegToRad(30), mgl32.Vec3{0.3, 1, 0}.Normalize())

func transform(translate mgl32.Vec3, rotate mgl32.Mat4, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(translate.X(), translate.Y(), translate.Z()).
		Mul4(rotate).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Build generates all meshes and lays out the scene from the settings.
// The can and ball resolutions come from cfg; everything else is fixed
// topology. Build is deterministic for a given cfg.
func Build(cfg config.Settings) (*Scene, error) {
	can, err := geom.NewCylinder(0.27, 0.27, 0.9, cfg.Meshes.CanSectors, cfg.Meshes.CanStacks, cfg.Meshes.Smooth)
	if err != nil {
		return nil, fmt.Errorf("failed to build can mesh: %w", err)
	}
	ball, err := geom.NewSphere(0.4, cfg.Meshes.BallSectors, cfg.Meshes.BallStacks, cfg.Meshes.Smooth)
	if err != nil {
		return nil, fmt.Errorf("failed to build ball mesh: %w", err)
	}

	lampCube := geom.NewBox(1, 1, 1)

	sc := &Scene{
		Lights: []Light{
			{
				Position:  mgl32.Vec3(cfg.Lights.Main.Position),
				Color:     mgl32.Vec3(cfg.Lights.Main.Color),
				Intensity: cfg.Lights.Main.Intensity,
				Orbit:     true,
			},
			{
				Position:  mgl32.Vec3(cfg.Lights.Fill.Position),
				Color:     mgl32.Vec3(cfg.Lights.Fill.Color),
				Intensity: cfg.Lights.Fill.Intensity,
			},
		},
	}

	sc.Objects = []Object{
		{
			Name:       "plane",
			Mesh:       geom.NewPlane(4, 4),
			Texture:    cfg.Textures.Plane,
			Model:      transform(mgl32.Vec3{0, 0, 0}, tableTilt, mgl32.Vec3{2.5, 2.5, 2.5}),
			LightIndex: -1,
		},
		{
			Name:       "case",
			Mesh:       geom.NewWedge(0.6, 0.5, 1.0),
			Texture:    cfg.Textures.Case,
			Model:      transform(mgl32.Vec3{-1, -0.04, 3}, tableTilt, mgl32.Vec3{2, 2, 2}),
			LightIndex: -1,
		},
		{
			Name:       "logo",
			Mesh:       geom.NewWedgeDecal(0.6, 0.5, 1.0),
			Texture:    cfg.Textures.Logo,
			Model:      transform(mgl32.Vec3{-1, -0.04, 3}, tableTilt, mgl32.Vec3{2, 2, 2}),
			LightIndex: -1,
		},
		{
			// The can mesh is Z-up; tipping it just past 90 degrees
			// about X stands it on the table with a slight lean.
			Name:       "can",
			Mesh:       can,
			Texture:    cfg.Textures.Can,
			Model:      transform(mgl32.Vec3{1, 0.75, 1}, mgl32.HomogRotate3DX(mgl32.DegToRad(99)), mgl32.Vec3{2, 2, 2}),
			LightIndex: -1,
		},
		{
			Name:       "ball",
			Mesh:       ball,
			Texture:    cfg.Textures.Ball,
			Model:      transform(mgl32.Vec3{1, -0.24, 4.2}, mgl32.HomogRotate3DX(mgl32.DegToRad(90)), mgl32.Vec3{1, 1, 1}),
			LightIndex: -1,
		},
		{
			Name:       "notes",
			Mesh:       geom.NewBox(1, 1, 1),
			Texture:    cfg.Textures.Notes,
			Model:      transform(mgl32.Vec3{2.5, -0.31, 2}, tableTilt, mgl32.Vec3{1, 0.1, 1}),
			LightIndex: -1,
		},
		{
			Name:       "main-light",
			Mesh:       lampCube,
			Model:      tableTilt.Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)),
			LightIndex: 0,
		},
		{
			Name:       "fill-light",
			Mesh:       lampCube,
			Model:      tableTilt.Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)),
			LightIndex: 1,
		},
	}
	return sc, nil
}

// Meshes returns the scene's meshes keyed by object name. Lamp markers
// share a mesh and appear once each.
func (s *Scene) Meshes() map[string]*geom.Mesh {
	out := make(map[string]*geom.Mesh, len(s.Objects))
	for _, o := range s.Objects {
		out[o.Name] = o.Mesh
	}
	return out
}
