package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-walkabout/pkg/input"
)

// Key constants for window controls
const (
	KeyQuit = glfw.KeyEscape
)

// Mouse button that drives look drags
const LookButton = glfw.MouseButtonLeft

// movementKeys maps physical keys to tracker keys
var movementKeys = map[glfw.Key]input.Key{
	glfw.KeyW: input.KeyW,
	glfw.KeyA: input.KeyA,
	glfw.KeyS: input.KeyS,
	glfw.KeyD: input.KeyD,
}

// translateKey returns the tracker key for a GLFW key, or input.KeyUnknown
func translateKey(key glfw.Key) input.Key {
	if k, ok := movementKeys[key]; ok {
		return k
	}
	return input.KeyUnknown
}
