package lessons_test

import (
	"testing"

	"gltutor/internal/animation"
	"gltutor/internal/assets"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/lessons"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesInOrder(t *testing.T) {
	assert.Equal(t, []string{"triangle", "vertexcolor", "texture", "indexed", "transform"}, lessons.Names())
}

func TestLookup(t *testing.T) {
	l, err := lessons.Lookup(" Texture ")
	require.NoError(t, err)
	assert.Equal(t, "texture", l.Name)

	_, err = lessons.Lookup("cube")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triangle, vertexcolor")
}

func TestEveryLessonBuildsAReloadableRenderable(t *testing.T) {
	opts := lessons.Options{Shaders: assets.Shaders(), Animation: animation.DefaultParams()}
	for _, l := range lessons.All() {
		r := l.New(opts)
		require.NotNil(t, r, l.Name)

		sr, ok := r.(renderer.ShaderReloader)
		require.True(t, ok, l.Name)
		assert.True(t, sr.UsesShader(l.Name+".vert"), l.Name)
		assert.True(t, sr.UsesShader(l.Name+".frag"), l.Name)

		_, ok = r.(renderer.StatusReporter)
		assert.True(t, ok, l.Name)
	}
}
