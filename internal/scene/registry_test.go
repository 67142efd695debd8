package scene

import (
	"errors"
	"testing"
)

func TestRegistryAddAndFind(t *testing.T) {
	r := NewRegistry()
	sphere := CreateSphere("sphere", 32, 2)

	if err := r.Add(sphere); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if r.Find("sphere") != sphere {
		t.Error("Find did not return the registered mesh")
	}
	if r.Find("missing") != nil {
		t.Error("Find should return nil for unknown names")
	}
}

func TestRegistryRejectsDuplicateAndEmpty(t *testing.T) {
	r := NewRegistry()
	_ = r.Add(CreateBox("box", 1))

	if err := r.Add(CreateBox("box", 2)); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if err := r.Add(CreateBox("", 2)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := r.Add(nil); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName for nil, got %v", err)
	}
}

func TestRegistryOrderAndRemove(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		_ = r.Add(CreateBox(name, 1))
	}

	if !r.Remove("b") {
		t.Fatal("Remove should report an existing mesh")
	}
	if r.Remove("b") {
		t.Error("Second Remove should report false")
	}

	all := r.All()
	if len(all) != 2 || all[0].Name != "a" || all[1].Name != "c" {
		t.Errorf("Expected [a c], got %v", names(all))
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 meshes, got %d", r.Len())
	}
}

func TestRegistryHighlighted(t *testing.T) {
	r := NewRegistry()
	a := CreateBox("a", 1)
	b := CreateBox("b", 1)
	_ = r.Add(a)
	_ = r.Add(b)

	b.SetHighlighted(true)

	got := r.Highlighted()
	if len(got) != 1 || got[0] != b {
		t.Errorf("Expected only b highlighted, got %v", names(got))
	}
}

func names(meshes []*Mesh) []string {
	out := make([]string, len(meshes))
	for i, m := range meshes {
		out[i] = m.Name
	}
	return out
}
