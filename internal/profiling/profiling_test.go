package profiling_test

import (
	"testing"
	"time"

	"gltutor/internal/profiling"

	"github.com/stretchr/testify/assert"
)

func TestTopNOrdersSlowestFirst(t *testing.T) {
	profiling.ResetFrame()
	defer profiling.ResetFrame()

	profiling.Add("lesson.Render", 4200*time.Microsecond)
	profiling.Add("glfw.SwapBuffers", 2*time.Millisecond)
	profiling.Add("glfw.PollEvents", 100*time.Microsecond)
	profiling.Add("lesson.Render", 0)

	assert.Equal(t, "lesson.Render:4.2ms, glfw.SwapBuffers:2ms", profiling.TopN(2))
	assert.Equal(t, 3, len(profiling.Snapshot()))
	assert.Contains(t, profiling.TopN(10), "glfw.PollEvents:0.1ms")
}

func TestSumWithPrefix(t *testing.T) {
	profiling.ResetFrame()
	defer profiling.ResetFrame()

	profiling.Add("glfw.SwapBuffers", 3*time.Millisecond)
	profiling.Add("glfw.PollEvents", time.Millisecond)
	profiling.Add("lesson.Update", 5*time.Millisecond)

	assert.Equal(t, 4*time.Millisecond, profiling.SumWithPrefix("glfw."))
	assert.Equal(t, time.Duration(0), profiling.SumWithPrefix("shader."))
}

func TestTrackAndReset(t *testing.T) {
	profiling.ResetFrame()

	stop := profiling.Track("lesson.Init")
	time.Sleep(time.Millisecond)
	stop()

	assert.GreaterOrEqual(t, profiling.Snapshot()["lesson.Init"], time.Millisecond)

	profiling.ResetFrame()
	assert.Empty(t, profiling.Snapshot())
	assert.Equal(t, "", profiling.TopN(3))
}
