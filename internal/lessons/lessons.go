// Package lessons lists the tutorial programs and builds their renderables.
package lessons

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"gltutor/internal/animation"
	"gltutor/internal/graphics/renderables/indexed"
	"gltutor/internal/graphics/renderables/texture"
	"gltutor/internal/graphics/renderables/transform"
	"gltutor/internal/graphics/renderables/triangle"
	"gltutor/internal/graphics/renderables/vertexcolor"
	renderer "gltutor/internal/graphics/renderer"
)

// Options are the shared inputs every lesson may use
type Options struct {
	Shaders   fs.FS
	Texture   string // empty selects the built-in checkerboard
	Animation animation.Params
	Logger    *slog.Logger
}

// Lesson describes one tutorial program
type Lesson struct {
	Name    string
	Concept string
	Order   int
	New     func(Options) renderer.Renderable
}

var registry = map[string]Lesson{
	"triangle": {
		Name:    "triangle",
		Concept: "one triangle, one draw call, color uniform",
		Order:   1,
		New:     func(o Options) renderer.Renderable { return triangle.NewTriangle(o.Shaders) },
	},
	"vertexcolor": {
		Name:    "vertexcolor",
		Concept: "per-vertex color attribute",
		Order:   2,
		New:     func(o Options) renderer.Renderable { return vertexcolor.NewVertexColor(o.Shaders) },
	},
	"texture": {
		Name:    "texture",
		Concept: "texture sampling with switchable wrap and filter modes",
		Order:   3,
		New: func(o Options) renderer.Renderable {
			return texture.NewTexture(o.Shaders, o.Texture, o.Logger)
		},
	},
	"indexed": {
		Name:    "indexed",
		Concept: "element buffer: 4 vertices, 6 indices",
		Order:   4,
		New: func(o Options) renderer.Renderable {
			return indexed.NewIndexed(o.Shaders, o.Texture, o.Logger)
		},
	},
	"transform": {
		Name:    "transform",
		Concept: "animated model-view-projection matrices",
		Order:   5,
		New: func(o Options) renderer.Renderable {
			return transform.NewTransform(o.Shaders, o.Texture, o.Animation, o.Logger)
		},
	},
}

// All returns every lesson in teaching order
func All() []Lesson {
	out := make([]Lesson, 0, len(registry))
	for _, l := range registry {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Names returns lesson names in teaching order
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Name
	}
	return names
}

// Lookup finds a lesson by name, case-insensitively
func Lookup(name string) (Lesson, error) {
	l, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Lesson{}, fmt.Errorf("unknown lesson %q, choose one of: %s", name, strings.Join(Names(), ", "))
	}
	return l, nil
}
