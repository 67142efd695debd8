package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Viewer3D/internal/engine"
	"Viewer3D/internal/gizmo"
	"Viewer3D/internal/logger"
	"Viewer3D/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	// ErrQuit is returned by Execute for the quit command.
	ErrQuit = errors.New("quit")
)

// Console runs text commands against a session. Every command that posts
// events processes them before returning, so the next command sees the result.
type Console struct {
	session *engine.Session
	out     io.Writer
	log     *zap.Logger
}

func New(session *engine.Session, out io.Writer, log *zap.Logger) *Console {
	return &Console{session: session, out: out, log: logger.OrNop(log)}
}

// Run executes commands line by line until EOF or quit. Command errors are
// printed and do not stop the loop.
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := c.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			c.printf("error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (c *Console) Execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	c.log.Debug("Console command", zap.String("line", line))

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "help":
		c.printf("Available commands:\n")
		c.printf("  list - List all meshes in scene\n")
		c.printf("  status - Show active tool and picked mesh\n")
		c.printf("  pick <name> - Pick a mesh by name\n")
		c.printf("  click <x> <y> - Click at a screen position\n")
		c.printf("  reset - Clear the selection\n")
		c.printf("  tool <cursor|position|rotate|scale> - Select a tool\n")
		c.printf("  drag <x|y|z> <amount> - Drag the active gizmo handle\n")
		c.printf("  rotate <name> <x|y|z> <degrees> - Rotate a mesh directly\n")
		c.printf("  add <box|sphere> <name> [x y z] - Add a mesh\n")
		c.printf("  remove <name> - Remove a mesh\n")
		c.printf("  quit - Exit\n")
		return nil

	case "list":
		meshes := c.session.Scene.All()
		c.printf("Total meshes: %d\n", len(meshes))
		for i, m := range meshes {
			p := m.Transform.Position
			s := m.Transform.Scale
			c.printf("  %d: %s [%s] (pos: %.2f, %.2f, %.2f) (scale: %.2f, %.2f, %.2f)%s\n",
				i, m.Name, m.Kind, p.X(), p.Y(), p.Z(), s.X(), s.Y(), s.Z(), marker(m.Highlighted()))
		}
		return nil

	case "status":
		c.printf("%s | handles: %s\n", c.session.Status(), handlesString(c.session.Gizmo))
		return nil

	case "pick":
		if len(args) != 1 {
			return usage("pick <name>")
		}
		if err := c.session.PickByName(args[0]); err != nil {
			return err
		}

	case "click":
		if len(args) != 2 {
			return usage("click <x> <y>")
		}
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		y, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		c.session.Click(x, y)

	case "reset":
		c.session.Deselect()

	case "tool":
		if len(args) != 1 {
			return usage("tool <cursor|position|rotate|scale>")
		}
		c.session.SelectTool(args[0])

	case "drag":
		if len(args) != 2 {
			return usage("drag <x|y|z> <amount>")
		}
		axis, err := gizmo.ParseAxis(args[0])
		if err != nil {
			return err
		}
		amount, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		if err := c.session.DragGizmo(axis, amount); err != nil {
			return err
		}

	case "rotate":
		if len(args) != 3 {
			return usage("rotate <name> <x|y|z> <degrees>")
		}
		m := c.session.Scene.Find(args[0])
		if m == nil {
			return fmt.Errorf("no mesh named %q", args[0])
		}
		axis, err := gizmo.ParseAxis(args[1])
		if err != nil {
			return err
		}
		deg, err := parseFloat(args[2])
		if err != nil {
			return err
		}
		var v mgl32.Vec3
		v[axis] = 1
		m.Transform.RotateWorld(v, mgl32.DegToRad(deg))

	case "add":
		if len(args) != 2 && len(args) != 5 {
			return usage("add <box|sphere> <name> [x y z]")
		}
		var m *scene.Mesh
		switch strings.ToLower(args[0]) {
		case "box":
			m = scene.CreateBox(args[1], 1)
		case "sphere":
			m = scene.CreateSphere(args[1], 32, 1)
		default:
			return fmt.Errorf("unknown mesh kind %q", args[0])
		}
		if len(args) == 5 {
			var pos mgl32.Vec3
			for i := range pos {
				f, err := parseFloat(args[2+i])
				if err != nil {
					return err
				}
				pos[i] = f
			}
			m.Transform.SetPosition(pos)
		}
		if err := c.session.AddMesh(m); err != nil {
			return err
		}

	case "remove":
		if len(args) != 1 {
			return usage("remove <name>")
		}
		if err := c.session.RemoveMesh(args[0]); err != nil {
			return err
		}

	case "quit", "exit":
		return ErrQuit

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	c.session.ProcessEvents()
	c.printf("%s\n", c.session.Status())
	return nil
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func usage(s string) error {
	return fmt.Errorf("usage: %s", s)
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return float32(f), nil
}

func marker(highlighted bool) string {
	if highlighted {
		return " *"
	}
	return ""
}

func handlesString(g *gizmo.Manager) string {
	if !g.Visible() {
		return "none"
	}
	h := g.Handles()
	var on []string
	if h.Position {
		on = append(on, "position")
	}
	if h.Rotation {
		on = append(on, "rotation")
	}
	if h.Scale {
		if g.UniformScaling() {
			on = append(on, "scale(uniform)")
		} else {
			on = append(on, "scale")
		}
	}
	return strings.Join(on, ",")
}
