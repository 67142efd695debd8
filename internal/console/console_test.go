package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"Viewer3D/internal/config"
	"Viewer3D/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestConsole(t *testing.T) (*Console, *engine.Session, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 800, 600
	cfg.DragSensitivity = 1
	s, err := engine.NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	var out bytes.Buffer
	return New(s, &out, nil), s, &out
}

func TestPickToolStatus(t *testing.T) {
	c, s, out := newTestConsole(t)

	for _, line := range []string{"tool position", "pick sphere"} {
		if err := c.Execute(line); err != nil {
			t.Fatalf("%q failed: %v", line, err)
		}
	}
	out.Reset()
	if err := c.Execute("status"); err != nil {
		t.Fatal(err)
	}

	want := "tool: position | picked: sphere | handles: position\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
	if !s.Scene.Find("sphere").Highlighted() {
		t.Error("Sphere should be highlighted")
	}
}

func TestDragMovesPickedMesh(t *testing.T) {
	c, s, _ := newTestConsole(t)

	_ = c.Execute("pick sphere")
	_ = c.Execute("tool position")
	if err := c.Execute("drag x 2"); err != nil {
		t.Fatalf("drag failed: %v", err)
	}

	if got := s.Scene.Find("sphere").Transform.Position; got != (mgl32.Vec3{2, 1, 0}) {
		t.Errorf("Expected (2,1,0), got %v", got)
	}
}

func TestRotateKeepsHandleOrientation(t *testing.T) {
	c, s, _ := newTestConsole(t)

	_ = c.Execute("tool rotate")
	_ = c.Execute("pick sphere")
	before := s.Gizmo.HandleOrientation()

	if err := c.Execute("rotate sphere y 45"); err != nil {
		t.Fatal(err)
	}

	if s.Gizmo.HandleOrientation() != before {
		t.Error("Rotating the mesh should not move the rotation handles")
	}
}

func TestClickAndReset(t *testing.T) {
	c, s, _ := newTestConsole(t)

	_ = c.Execute("click 400 300")
	if s.Controller.Picked() == nil {
		t.Fatal("Click at the centre should pick the sphere")
	}

	_ = c.Execute("reset")
	if s.Controller.Picked() != nil {
		t.Error("reset should clear the selection")
	}
}

func TestUnknownToolKeepsMode(t *testing.T) {
	c, s, _ := newTestConsole(t)

	_ = c.Execute("tool scale")
	_ = c.Execute("tool lasso")

	if s.Controller.Tool().String() != "scale" {
		t.Errorf("Expected scale, got %s", s.Controller.Tool())
	}
}

func TestExecuteErrors(t *testing.T) {
	c, _, _ := newTestConsole(t)

	if err := c.Execute("teleport"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
	for _, line := range []string{"pick", "pick teapot", "click a b", "drag w 1", "drag x", "rotate sphere q 10"} {
		if err := c.Execute(line); err == nil {
			t.Errorf("%q should fail", line)
		}
	}
	if err := c.Execute("   "); err != nil {
		t.Errorf("Blank line should be ignored, got %v", err)
	}
}

func TestRun(t *testing.T) {
	c, s, out := newTestConsole(t)

	input := strings.Join([]string{"help", "pick sphere", "bogus", "quit", "pick ground"}, "\n")
	if err := c.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "error: unknown command: bogus") {
		t.Errorf("Expected the error to be printed, got %q", out.String())
	}
	if s.Controller.Picked() != s.Scene.Find("sphere") {
		t.Error("Commands after quit should not run")
	}
}

func TestList(t *testing.T) {
	c, _, out := newTestConsole(t)
	_ = c.Execute("pick sphere")
	out.Reset()

	_ = c.Execute("list")

	if !strings.Contains(out.String(), "Total meshes: 2") || !strings.Contains(out.String(), "sphere [sphere]") {
		t.Errorf("Unexpected listing %q", out.String())
	}
	if !strings.Contains(out.String(), " *\n") {
		t.Error("Picked mesh should be marked")
	}
}

func TestAddPickRemove(t *testing.T) {
	c, s, _ := newTestConsole(t)

	if err := c.Execute("add box crate 3 0.5 0"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	crate := s.Scene.Find("crate")
	if crate == nil || crate.Transform.Position != (mgl32.Vec3{3, 0.5, 0}) {
		t.Fatal("Crate should be added at (3,0.5,0)")
	}

	_ = c.Execute("tool rotate")
	_ = c.Execute("pick sphere")
	_ = c.Execute("pick crate")
	if s.Controller.Picked() != crate || s.Scene.Find("sphere").Highlighted() {
		t.Error("Picking the crate should move the selection off the sphere")
	}

	if err := c.Execute("remove crate"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if s.Scene.Find("crate") != nil || s.Controller.Picked() != nil || s.Gizmo.Attached() != nil {
		t.Error("Removed crate should leave no selection or gizmo behind")
	}
}

func TestAddErrors(t *testing.T) {
	c, _, _ := newTestConsole(t)

	for _, line := range []string{"add", "add cone x", "add box sphere", "add box b 1 2", "add sphere b 1 y 2", "remove", "remove teapot"} {
		if err := c.Execute(line); err == nil {
			t.Errorf("%q should fail", line)
		}
	}
	if err := c.Execute("add sphere ball"); err != nil {
		t.Errorf("add sphere failed: %v", err)
	}
}
