package selection

import (
	"strings"

	"Viewer3D/internal/gizmo"
)

// Tool is the manipulation capability exposed by the gizmo.
type Tool int

const (
	ToolCursor Tool = iota
	ToolPosition
	ToolRotate
	ToolScale
)

var toolNames = [...]string{"cursor", "position", "rotate", "scale"}

func (t Tool) String() string {
	if t < ToolCursor || t > ToolScale {
		return "unknown"
	}
	return toolNames[t]
}

// ParseTool maps a tool name to its Tool. The match is case-insensitive.
func ParseTool(name string) (Tool, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), true
		}
	}
	return ToolCursor, false
}

// Handles returns the handle sets a tool exposes. Exactly one set is on,
// except for the cursor which shows none.
func (t Tool) Handles() gizmo.Handles {
	switch t {
	case ToolPosition:
		return gizmo.Handles{Position: true}
	case ToolRotate:
		return gizmo.Handles{Rotation: true}
	case ToolScale:
		return gizmo.Handles{Scale: true}
	}
	return gizmo.Handles{}
}
