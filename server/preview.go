// Package server exposes the generated meshes over a websocket so a
// browser page can inspect tessellation output without a local GL
// context.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/websocket"

	"tablescene/geom"
)

// MeshPayload is the wire form of one mesh: interleaved vertex data
// plus triangle indices.
type MeshPayload struct {
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Vertices  int       `json:"vertexCount"`
	Triangles int       `json:"triangleCount"`
	Stride    int       `json:"stride"`
	Data      []float32 `json:"data"`
	Indices   []uint32  `json:"indices"`
}

// ListPayload names every available mesh.
type ListPayload struct {
	Type   string   `json:"type"`
	Meshes []string `json:"meshes"`
}

type ErrorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local preview tool, any origin is fine
	},
}

// Preview serves mesh data to websocket clients. Meshes are immutable
// once constructed, so no locking is needed around them.
type Preview struct {
	meshes map[string]*geom.Mesh
}

func NewPreview(meshes map[string]*geom.Mesh) *Preview {
	return &Preview{meshes: meshes}
}

// Serve listens on port and blocks. Intended to run in its own
// goroutine alongside the renderer.
func (p *Preview) Serve(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", p.handleWebSocket)

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Mesh preview listening on ws://localhost%s/ws\n", addr)
	return http.ListenAndServe(addr, mux)
}

func (p *Preview) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(p.list()); err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		reply := p.handleCommand(string(msg))
		if err := conn.WriteJSON(reply); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
}

// handleCommand maps a text command to its reply payload. Commands are
// "list" and "mesh <name>".
func (p *Preview) handleCommand(cmd string) interface{} {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return ErrorPayload{Type: "error", Message: "empty command"}
	}
	switch fields[0] {
	case "list":
		return p.list()
	case "mesh":
		if len(fields) != 2 {
			return ErrorPayload{Type: "error", Message: "usage: mesh <name>"}
		}
		m, ok := p.meshes[fields[1]]
		if !ok {
			return ErrorPayload{Type: "error", Message: "unknown mesh: " + fields[1]}
		}
		return payloadFor(fields[1], m)
	default:
		return ErrorPayload{Type: "error", Message: "unknown command: " + fields[0]}
	}
}

func (p *Preview) list() ListPayload {
	names := make([]string, 0, len(p.meshes))
	for name := range p.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return ListPayload{Type: "list", Meshes: names}
}

func payloadFor(name string, m *geom.Mesh) MeshPayload {
	return MeshPayload{
		Type:      "mesh",
		Name:      name,
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Stride:    geom.Stride,
		Data:      m.Vertices,
		Indices:   m.Indices,
	}
}
