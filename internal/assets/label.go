package assets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sub-resource suffixes for the first scene and the first primitive of the first
// mesh of a glTF container. Existing asset files are addressed this way.
const (
	SceneSuffix = "#Scene0"
	MeshSuffix  = "#Mesh0/Primitive0"
)

var ErrUnknownLabel = errors.New("unknown sub-resource label")

// ScenePath returns the renderable scene sub-resource of the container at path.
func ScenePath(path string) string {
	return path + SceneSuffix
}

// MeshPath returns the source mesh sub-resource of the container at path.
func MeshPath(path string) string {
	return path + MeshSuffix
}

// LabelKind says which part of a container a label addresses.
type LabelKind int

const (
	LabelNone LabelKind = iota
	LabelScene
	LabelMesh
)

func (k LabelKind) String() string {
	switch k {
	case LabelScene:
		return "scene"
	case LabelMesh:
		return "mesh"
	default:
		return "container"
	}
}

// Label is a parsed positional address into a container.
type Label struct {
	Kind      LabelKind
	Index     int
	Primitive int
}

// SplitPath separates "file.glb#Label" into the container path and the raw label.
func SplitPath(path string) (file, label string) {
	if i := strings.IndexByte(path, '#'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

// ParseLabel parses "SceneN" and "MeshN/PrimitiveM". An empty label addresses
// the whole container.
func ParseLabel(raw string) (Label, error) {
	if raw == "" {
		return Label{Kind: LabelNone}, nil
	}
	if rest, ok := strings.CutPrefix(raw, "Scene"); ok {
		n, err := parseIndex(rest)
		if err != nil {
			return Label{}, fmt.Errorf("%w: %q", ErrUnknownLabel, raw)
		}
		return Label{Kind: LabelScene, Index: n}, nil
	}
	if rest, ok := strings.CutPrefix(raw, "Mesh"); ok {
		meshPart, primPart, found := strings.Cut(rest, "/Primitive")
		if !found {
			return Label{}, fmt.Errorf("%w: %q", ErrUnknownLabel, raw)
		}
		mesh, err := parseIndex(meshPart)
		if err != nil {
			return Label{}, fmt.Errorf("%w: %q", ErrUnknownLabel, raw)
		}
		prim, err := parseIndex(primPart)
		if err != nil {
			return Label{}, fmt.Errorf("%w: %q", ErrUnknownLabel, raw)
		}
		return Label{Kind: LabelMesh, Index: mesh, Primitive: prim}, nil
	}
	return Label{}, fmt.Errorf("%w: %q", ErrUnknownLabel, raw)
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing index")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative index")
	}
	return n, nil
}

func (l Label) String() string {
	switch l.Kind {
	case LabelScene:
		return fmt.Sprintf("Scene%d", l.Index)
	case LabelMesh:
		return fmt.Sprintf("Mesh%d/Primitive%d", l.Index, l.Primitive)
	default:
		return ""
	}
}
