package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tapcade/arcade/internal/core"
)

// NodeSpec describes one named node of a scene asset.
type NodeSpec struct {
	Name  string  `yaml:"name"`
	Kind  string  `yaml:"kind"` // sprite, label, button, bar
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Z     int     `yaml:"z"`
	Text  string  `yaml:"text"`
	Color string  `yaml:"color"`
}

// Pos returns the node position.
func (n NodeSpec) Pos() core.Vec2 {
	return core.Vec2{X: n.X, Y: n.Y}
}

// Box returns the node bounds.
func (n NodeSpec) Box() core.Box {
	return core.Box{Center: n.Pos(), W: n.W, H: n.H}
}

// Layout is a parsed scene asset: its frame size and named nodes.
type Layout struct {
	Name   string     `yaml:"name"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Nodes  []NodeSpec `yaml:"nodes"`
}

// MissingNodeError reports a scene lookup for a node the asset lacks.
type MissingNodeError struct {
	Scene string
	Node  string
	Have  []string // nodes the asset does provide
}

func (e *MissingNodeError) Error() string {
	if len(e.Have) == 0 {
		return fmt.Sprintf("scene %q: missing node %q", e.Scene, e.Node)
	}
	return fmt.Sprintf("scene %q: missing node %q (has %s)", e.Scene, e.Node, strings.Join(e.Have, ", "))
}

// ErrInvalidLayout is returned for layouts with unusable geometry.
var ErrInvalidLayout = errors.New("scene: invalid layout")

// ParseLayout decodes a YAML scene asset and checks its frame.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("scene: cannot parse layout: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("%w: %q has frame %gx%g", ErrInvalidLayout, l.Name, l.Width, l.Height)
	}
	seen := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if seen[n.Name] {
			return nil, fmt.Errorf("%w: %q has duplicate node %q", ErrInvalidLayout, l.Name, n.Name)
		}
		seen[n.Name] = true
	}
	return &l, nil
}

// Node looks up a node by name.
func (l *Layout) Node(name string) (NodeSpec, error) {
	for _, n := range l.Nodes {
		if n.Name == name {
			return n, nil
		}
	}
	return NodeSpec{}, &MissingNodeError{Scene: l.Name, Node: name, Have: l.Names()}
}

// Require checks that every named node exists. All missing nodes are
// reported together.
func (l *Layout) Require(names ...string) error {
	var errs []error
	for _, name := range names {
		if _, err := l.Node(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Names returns the node names in sorted order.
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		names = append(names, n.Name)
	}
	sort.Strings(names)
	return names
}

// ParseColor maps a color name from a layout to a screen color. Unknown
// names fall back to the default color.
func ParseColor(name string) core.Color {
	c, _ := core.ColorByName(name)
	return c
}
