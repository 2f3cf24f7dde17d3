package input

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical lesson control, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionCycleWrap
	ActionCycleFilter
	ActionMixUp
	ActionMixDown
	ActionTogglePause
	ActionScaleUp
	ActionScaleDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionReset
	ActionToggleProjection
	ActionToggleWireframe
	ActionToggleOverlay
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"quit", "cycle-wrap", "cycle-filter", "mix-up", "mix-down",
	"toggle-pause", "scale-up", "scale-down",
	"move-left", "move-right", "move-up", "move-down",
	"reset", "toggle-projection", "toggle-wireframe", "toggle-overlay",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps physical keys to logical actions and tracks per-frame edges
type InputManager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// reset each frame by PostUpdate
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default lesson bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyW, ActionCycleWrap)
	im.BindKey(glfw.KeyF, ActionCycleFilter)
	im.BindKey(glfw.KeyEqual, ActionMixUp)
	im.BindKey(glfw.KeyKPAdd, ActionMixUp)
	im.BindKey(glfw.KeyMinus, ActionMixDown)
	im.BindKey(glfw.KeyKPSubtract, ActionMixDown)
	im.BindKey(glfw.KeySpace, ActionTogglePause)
	im.BindKey(glfw.KeyPageUp, ActionScaleUp)
	im.BindKey(glfw.KeyPageDown, ActionScaleDown)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyUp, ActionMoveUp)
	im.BindKey(glfw.KeyDown, ActionMoveDown)
	im.BindKey(glfw.KeyR, ActionReset)
	im.BindKey(glfw.KeyP, ActionToggleProjection)
	im.BindKey(glfw.KeyM, ActionToggleWireframe)
	im.BindKey(glfw.KeyH, ActionToggleOverlay)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// KeysFor lists the keys bound to an action
func (im *InputManager) KeysFor(action Action) []glfw.Key {
	im.mu.RLock()
	defer im.mu.RUnlock()

	var keys []glfw.Key
	for k, acts := range im.keyToActions {
		for _, a := range acts {
			if a == action {
				keys = append(keys, k)
				break
			}
		}
	}
	return keys
}

// Hint formats the keys bound to an action for on-screen help, e.g. "[m]".
// Unbound actions give "".
func (im *InputManager) Hint(action Action) string {
	keys := im.KeysFor(action)
	if len(keys) == 0 {
		return ""
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = KeyLabel(k)
	}
	return "[" + strings.Join(labels, "/") + "]"
}

var keyLabels = map[glfw.Key]string{
	glfw.KeyEscape:     "esc",
	glfw.KeySpace:      "space",
	glfw.KeyEqual:      "=",
	glfw.KeyMinus:      "-",
	glfw.KeyKPAdd:      "kp+",
	glfw.KeyKPSubtract: "kp-",
	glfw.KeyPageUp:     "pgup",
	glfw.KeyPageDown:   "pgdn",
	glfw.KeyLeft:       "left",
	glfw.KeyRight:      "right",
	glfw.KeyUp:         "up",
	glfw.KeyDown:       "down",
}

// KeyLabel is a short lowercase name for a key. It does not call into GLFW,
// so it works before glfw.Init.
func KeyLabel(k glfw.Key) string {
	if name, ok := keyLabels[k]; ok {
		return name
	}
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return string(rune('a' + int(k-glfw.KeyA)))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return string(rune('0' + int(k-glfw.Key0)))
	}
	return "key" + strconv.Itoa(int(k))
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		// Detect edges immediately when event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback installs the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
