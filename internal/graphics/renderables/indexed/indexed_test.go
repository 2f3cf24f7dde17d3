package indexed_test

import (
	"testing"

	"gltutor/internal/graphics/renderables/indexed"

	"github.com/stretchr/testify/assert"
)

func TestStepMix(t *testing.T) {
	assert.InDelta(t, 0.6, indexed.StepMix(0.5, 0.1), 1e-6)
	assert.Equal(t, float32(1), indexed.StepMix(0.95, 0.1))
	assert.Equal(t, float32(0), indexed.StepMix(0.05, -0.1))
}
