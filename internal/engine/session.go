package engine

import (
	"fmt"

	"Viewer3D/internal/config"
	"Viewer3D/internal/gizmo"
	"Viewer3D/internal/logger"
	"Viewer3D/internal/picking"
	"Viewer3D/internal/scene"
	"Viewer3D/internal/selection"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Light is a hemispheric light: Direction points towards the sky colour.
type Light struct {
	Name      string
	Direction mgl32.Vec3
	Intensity float32
}

// Session is one viewer run. It owns the scene, the camera, the gizmo and the
// selection controller, and feeds the controller from a bounded event queue.
// All methods must be called from the thread that runs the frame loop.
type Session struct {
	Scene      *scene.Registry
	Camera     *picking.Camera
	Light      *Light
	Gizmo      *gizmo.Manager
	Controller *selection.Controller

	Width  int32
	Height int32

	events chan selection.Event
	log    *zap.Logger
}

// NewSession builds the default scene (ground, sphere, light, camera) and
// the controller configured from cfg.
func NewSession(cfg config.Config, log *zap.Logger) (*Session, error) {
	log = logger.OrNop(log)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Session{
		Scene:  scene.NewRegistry(),
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Light:  &Light{Name: "light", Direction: mgl32.Vec3{0, 1, 0}, Intensity: 1},
		events: make(chan selection.Event, cfg.EventQueueSize),
		log:    log,
	}

	if err := s.createMeshes(); err != nil {
		return nil, err
	}
	s.createCamera()

	var fallback *scene.Mesh
	if cfg.DefaultEntity != "" {
		fallback = s.Scene.Find(cfg.DefaultEntity)
		if fallback == nil {
			return nil, fmt.Errorf("default entity %q is not in the scene", cfg.DefaultEntity)
		}
	}

	s.Gizmo = gizmo.NewManager(log.Named("gizmo"))
	s.Gizmo.Sensitivity = cfg.DragSensitivity
	s.Controller = selection.NewController(s.Gizmo, selection.Options{
		DefaultTool:  cfg.Tool(),
		Fallback:     fallback,
		RotationSync: cfg.RotationSync,
		Logger:       log.Named("selection"),
	})

	log.Info("Session ready",
		zap.Int("meshes", s.Scene.Len()),
		zap.Stringer("tool", s.Controller.Tool()))
	return s, nil
}

func (s *Session) createCamera() {
	s.Camera = picking.NewCamera(s.Width, s.Height)
	s.Camera.Position = mgl32.Vec3{0, 5, -10}
	s.Camera.SetTarget(mgl32.Vec3{0, 0, 0})
}

func (s *Session) createMeshes() error {
	ground := scene.CreateGround("ground", 10, 10)
	if err := s.Scene.Add(ground); err != nil {
		return err
	}

	sphere := scene.CreateSphere("sphere", 32, 2)
	sphere.Transform.SetPosition(mgl32.Vec3{0, 1, 0})
	return s.Scene.Add(sphere)
}

// AddMesh registers an extra mesh in the scene.
func (s *Session) AddMesh(m *scene.Mesh) error {
	if err := s.Scene.Add(m); err != nil {
		return err
	}
	s.log.Debug("Mesh added", zap.String("mesh", m.Name), zap.Stringer("kind", m.Kind))
	return nil
}

// RemoveMesh takes the named mesh out of the scene. Queued events are
// applied first, then the controller releases the mesh so neither the
// selection nor the gizmo keeps a reference to it.
func (s *Session) RemoveMesh(name string) error {
	m := s.Scene.Find(name)
	if m == nil {
		return fmt.Errorf("no mesh named %q", name)
	}
	s.ProcessEvents()
	s.Controller.Release(m)
	s.Scene.Remove(name)
	s.log.Debug("Mesh removed", zap.String("mesh", name))
	return nil
}

// Post queues an event for the next ProcessEvents call. It reports false and
// drops the event when the queue is full.
func (s *Session) Post(ev selection.Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		s.log.Warn("Event queue full, dropping event", zap.Any("event", ev))
		return false
	}
}

// ProcessEvents hands every queued event to the controller and returns how
// many were processed.
func (s *Session) ProcessEvents() int {
	n := 0
	for {
		select {
		case ev := <-s.events:
			s.Controller.Handle(ev)
			n++
		default:
			return n
		}
	}
}

// Click resolves a left click at screen position (x, y). A hit queues a pick
// event; clicking empty space queues a deselect, which clears whatever is
// picked once the queue reaches it.
func (s *Session) Click(x, y float32) bool {
	ray := picking.ScreenToRay(s.Camera, x, y, s.Width, s.Height)
	hit, ok := picking.Pick(s.Camera, s.Scene.All(), ray)
	if ok {
		s.log.Debug("Click hit", zap.String("mesh", hit.Mesh.Name), zap.Float32("distance", hit.Distance))
		return s.Post(selection.PickEvent{Mesh: hit.Mesh, Trigger: selection.TriggerLeftPick})
	}
	return s.Post(selection.DeselectEvent{})
}

// PickByName queues a pick of the named mesh.
func (s *Session) PickByName(name string) error {
	m := s.Scene.Find(name)
	if m == nil {
		return fmt.Errorf("no mesh named %q", name)
	}
	s.Post(selection.PickEvent{Mesh: m, Trigger: selection.TriggerLeftPick})
	return nil
}

// Deselect queues a deselect of whatever is picked when the queue is processed.
func (s *Session) Deselect() {
	s.Post(selection.DeselectEvent{})
}

func (s *Session) SelectTool(name string) {
	s.Post(selection.ToolEvent{Name: name})
}

// DragGizmo forwards a drag to the gizmo manager.
func (s *Session) DragGizmo(axis gizmo.Axis, amount float32) error {
	return s.Gizmo.Drag(axis, amount)
}

func (s *Session) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width, s.Height = width, height
	s.Camera.SetAspectRatio(width, height)
}

// Status is a one-line summary of the selection state.
func (s *Session) Status() string {
	st := s.Controller.State()
	picked := st.Picked
	if picked == "" {
		picked = "none"
	}
	return fmt.Sprintf("tool: %s | picked: %s", st.Tool, picked)
}
