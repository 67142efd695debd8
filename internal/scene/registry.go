package scene

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName     = errors.New("mesh name is empty")
	ErrDuplicateName = errors.New("mesh name already registered")
)

// Registry holds the meshes of a scene keyed by their unique name.
// Iteration order is insertion order.
type Registry struct {
	meshes []*Mesh
	byName map[string]*Mesh
}

func NewRegistry() *Registry {
	return &Registry{
		meshes: make([]*Mesh, 0),
		byName: make(map[string]*Mesh),
	}
}

// Add registers a mesh. Names must be non-empty and unique.
func (r *Registry) Add(m *Mesh) error {
	if m == nil || m.Name == "" {
		return ErrEmptyName
	}
	if _, ok := r.byName[m.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, m.Name)
	}
	r.meshes = append(r.meshes, m)
	r.byName[m.Name] = m
	return nil
}

// Find returns the mesh with the given name, or nil.
func (r *Registry) Find(name string) *Mesh {
	return r.byName[name]
}

// Remove unregisters the named mesh and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	m, ok := r.byName[name]
	if !ok {
		return false
	}
	delete(r.byName, name)
	for i, o := range r.meshes {
		if o == m {
			r.meshes = append(r.meshes[:i], r.meshes[i+1:]...)
			break
		}
	}
	return true
}

// All returns a copy of the registered meshes.
func (r *Registry) All() []*Mesh {
	out := make([]*Mesh, len(r.meshes))
	copy(out, r.meshes)
	return out
}

func (r *Registry) Len() int {
	return len(r.meshes)
}

// Highlighted returns every mesh whose highlight is on.
func (r *Registry) Highlighted() []*Mesh {
	var result []*Mesh
	for _, m := range r.meshes {
		if m.Highlighted() {
			result = append(result, m)
		}
	}
	return result
}
