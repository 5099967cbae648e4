package assets

import (
	"errors"
	"testing"
)

func TestSubResourcePaths(t *testing.T) {
	if got := ScenePath("Foo.glb"); got != "Foo.glb#Scene0" {
		t.Errorf("ScenePath: expected Foo.glb#Scene0, got %s", got)
	}
	if got := MeshPath("Foo.glb"); got != "Foo.glb#Mesh0/Primitive0" {
		t.Errorf("MeshPath: expected Foo.glb#Mesh0/Primitive0, got %s", got)
	}
}

func TestSplitPath(t *testing.T) {
	file, label := SplitPath("models/Cemetery.glb#Mesh0/Primitive0")
	if file != "models/Cemetery.glb" || label != "Mesh0/Primitive0" {
		t.Errorf("Unexpected split: %q %q", file, label)
	}

	file, label = SplitPath("Plain.glb")
	if file != "Plain.glb" || label != "" {
		t.Errorf("Unexpected split without label: %q %q", file, label)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want Label
	}{
		{"", Label{Kind: LabelNone}},
		{"Scene0", Label{Kind: LabelScene}},
		{"Scene3", Label{Kind: LabelScene, Index: 3}},
		{"Mesh0/Primitive0", Label{Kind: LabelMesh}},
		{"Mesh2/Primitive1", Label{Kind: LabelMesh, Index: 2, Primitive: 1}},
	}
	for _, tt := range tests {
		got, err := ParseLabel(tt.raw)
		if err != nil {
			t.Errorf("ParseLabel(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLabel(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
		if got.String() != tt.raw {
			t.Errorf("Label(%q).String() = %q", tt.raw, got.String())
		}
	}
}

func TestParseLabelRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"Scene", "Scene-1", "Mesh0", "Mesh0/Primitive", "Material0", "Meshx/Primitive0"} {
		if _, err := ParseLabel(raw); !errors.Is(err, ErrUnknownLabel) {
			t.Errorf("ParseLabel(%q) should fail with ErrUnknownLabel, got %v", raw, err)
		}
	}
}
