package selection

import "Viewer3D/internal/scene"

// Trigger is the kind of pointer action that produced a pick event.
type Trigger int

const (
	TriggerLeftPick Trigger = iota
	TriggerRightPick
	// TriggerPickOut fires when the pointer is released away from a picked mesh.
	TriggerPickOut
)

func (t Trigger) String() string {
	switch t {
	case TriggerLeftPick:
		return "left-pick"
	case TriggerRightPick:
		return "right-pick"
	case TriggerPickOut:
		return "pick-out"
	}
	return "unknown"
}

// Event is a message the application loop hands to the controller.
type Event interface {
	event()
}

// PickEvent reports that the engine resolved a click to Mesh.
type PickEvent struct {
	Mesh    *scene.Mesh
	Trigger Trigger
}

// ResetEvent asks to drop Mesh from the selection.
type ResetEvent struct {
	Mesh *scene.Mesh
}

// DeselectEvent clears whatever is picked when the event is handled.
type DeselectEvent struct{}

// ToolEvent is a tool selection request from the UI layer.
type ToolEvent struct {
	Name string
}

func (PickEvent) event()     {}
func (ResetEvent) event()    {}
func (DeselectEvent) event() {}
func (ToolEvent) event()     {}
