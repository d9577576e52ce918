// Package config loads scene descriptions for the sweep command.
//
// A scene names a set of curves and a set of surfaces built from them:
//
//	curves:
//	  - name: profile
//	    kind: circle
//	    radius: 0.5
//	  - name: rail
//	    kind: bspline
//	    steps: 24
//	    points: [[0, 0, 0], [1, 2, 0], [3, 1, 1], [4, 0, 2]]
//	surfaces:
//	  - name: tube
//	    kind: gencyl
//	    profile: profile
//	    sweep: rail
//
// Defaults are applied first, then the scene is validated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

// Curve kinds.
const (
	KindBezier   = "bezier"
	KindBspline  = "bspline"
	KindCircle   = "circle"
	KindPolyline = "polyline"
	KindArc      = "arc"
)

// Surface kinds.
const (
	KindRevolve = "revolve"
	KindGenCyl  = "gencyl"
)

const (
	DefaultSteps  = 16
	DefaultRadius = 1.0
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is the complete scene file.
type Scene struct {
	Curves   []Curve   `yaml:"curves"`
	Surfaces []Surface `yaml:"surfaces"`
}

// Curve describes one named curve.
type Curve struct {
	Name string `yaml:"name"`
	// bezier, bspline, circle, polyline or arc
	Kind string `yaml:"kind"`
	// samples per segment minus one; for circles the total number of steps
	Steps int `yaml:"steps"`
	// control points for bezier and bspline, vertices for polyline
	Points []vec3.T `yaml:"points"`
	// circle and arc
	Radius float64 `yaml:"radius"`
	// arc center, or the offset of a circle from the origin
	Center vec3.T `yaml:"center"`
	// arc angles in degrees; an end below the start gives a full circle
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Surface describes one named surface built from previously named curves.
type Surface struct {
	Name string `yaml:"name"`
	// revolve or gencyl
	Kind    string `yaml:"kind"`
	Profile string `yaml:"profile"`
	// rail curve, gencyl only
	Sweep string `yaml:"sweep"`
	// rotation steps, revolve only
	Steps int `yaml:"steps"`
}

// Load reads, defaults and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	return Parse(data)
}

// Parse decodes, defaults and validates a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	scene.applyDefaults()
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	return &scene, nil
}

func (s *Scene) applyDefaults() {
	for i := range s.Curves {
		c := &s.Curves[i]
		c.Kind = strings.ToLower(c.Kind)
		if c.Steps == 0 {
			c.Steps = DefaultSteps
		}
		if c.Radius == 0 && (c.Kind == KindCircle || c.Kind == KindArc) {
			c.Radius = DefaultRadius
		}
	}

	for i := range s.Surfaces {
		surf := &s.Surfaces[i]
		surf.Kind = strings.ToLower(surf.Kind)
		if surf.Steps == 0 && surf.Kind == KindRevolve {
			surf.Steps = DefaultSteps
		}
	}
}

// Curve returns the curve called name.
func (s *Scene) Curve(name string) (Curve, bool) {
	for _, c := range s.Curves {
		if c.Name == name {
			return c, true
		}
	}
	return Curve{}, false
}

// Validate checks the scene and reports all problems at once.
func (s *Scene) Validate() error {
	var errs []string

	curves := make(map[string]bool, len(s.Curves))
	for i, c := range s.Curves {
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("curve %d has no name", i))
		} else if curves[c.Name] {
			errs = append(errs, fmt.Sprintf("duplicate curve %q", c.Name))
		}
		curves[c.Name] = true

		if err := c.validate(); err != nil {
			errs = append(errs, fmt.Sprintf("curve %q: %v", c.Name, err))
		}
	}

	surfaces := make(map[string]bool, len(s.Surfaces))
	for i, surf := range s.Surfaces {
		if surf.Name == "" {
			errs = append(errs, fmt.Sprintf("surface %d has no name", i))
		} else if surfaces[surf.Name] {
			errs = append(errs, fmt.Sprintf("duplicate surface %q", surf.Name))
		}
		surfaces[surf.Name] = true

		refs := []string{surf.Profile}
		switch surf.Kind {
		case KindRevolve:
			if surf.Steps < 1 {
				errs = append(errs, fmt.Sprintf("surface %q: steps must be positive", surf.Name))
			}
		case KindGenCyl:
			refs = append(refs, surf.Sweep)
		default:
			errs = append(errs, fmt.Sprintf("surface %q: unknown kind %q", surf.Name, surf.Kind))
			continue
		}

		for _, ref := range refs {
			if !curves[ref] {
				errs = append(errs, fmt.Sprintf("surface %q: unknown curve %q", surf.Name, ref))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScene, strings.Join(errs, "; "))
	}
	return nil
}

func (c *Curve) validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("negative steps %d", c.Steps)
	}

	switch c.Kind {
	case KindBezier:
		if len(c.Points) < 4 || len(c.Points)%3 != 1 {
			return fmt.Errorf("bezier needs 3n+1 control points, got %d", len(c.Points))
		}
	case KindBspline:
		if len(c.Points) < 4 {
			return fmt.Errorf("bspline needs at least 4 control points, got %d", len(c.Points))
		}
	case KindPolyline:
		if len(c.Points) < 2 {
			return fmt.Errorf("polyline needs at least 2 points, got %d", len(c.Points))
		}
	case KindCircle:
		if c.Radius <= 0 {
			return fmt.Errorf("radius must be positive, got %g", c.Radius)
		}
	case KindArc:
		if c.Radius <= 0 {
			return fmt.Errorf("radius must be positive, got %g", c.Radius)
		}
		if c.Start == c.End {
			return errors.New("arc start and end angles are equal")
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}

	return nil
}
