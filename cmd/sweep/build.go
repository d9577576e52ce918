package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/alexozer/sweep"
	"github.com/alexozer/sweep/config"
	"github.com/alexozer/sweep/make"
	"github.com/alexozer/sweep/obj"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

// run builds every surface of the scene and writes it to outDir as
// <name>.obj. It returns the paths written.
func run(scene *config.Scene, outDir string, logger *zap.Logger) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ev := sweep.NewEvaluator(logger)

	curves := map[string]sweep.Curve{}
	for _, c := range scene.Curves {
		curve, err := evalCurve(ev, c)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", c.Name, err)
		}
		curves[c.Name] = curve
	}

	var paths []string
	for _, surf := range scene.Surfaces {
		mesh, err := buildSurface(ev, surf, curves)
		if err != nil {
			return paths, fmt.Errorf("surface %q: %w", surf.Name, err)
		}

		path := filepath.Join(outDir, surf.Name+".obj")
		if err := writeMesh(path, mesh); err != nil {
			return paths, fmt.Errorf("surface %q: %w", surf.Name, err)
		}
		paths = append(paths, path)

		bb := mesh.BoundingBox()
		logger.Info("wrote surface",
			zap.String("name", surf.Name),
			zap.String("path", path),
			zap.Int("points", len(mesh.Points)),
			zap.Int("faces", len(mesh.Faces)),
			zap.Float64s("min", bb.Min[:]),
			zap.Float64s("max", bb.Max[:]),
		)
	}

	return paths, nil
}

func evalCurve(ev *sweep.Evaluator, c config.Curve) (sweep.Curve, error) {
	switch c.Kind {
	case config.KindBezier:
		return ev.Bezier(c.Points, c.Steps)
	case config.KindBspline:
		return ev.Bspline(c.Points, c.Steps)
	case config.KindPolyline:
		return ev.Bezier(make.Polyline(c.Points), c.Steps)
	case config.KindArc:
		pts := make.Arc(&c.Center, &vec3.UnitX, &vec3.UnitY, c.Radius, radians(c.Start), radians(c.End))
		return ev.Bezier(pts, c.Steps)
	case config.KindCircle:
		curve := ev.Circle(c.Radius, c.Steps)
		for i := range curve {
			curve[i].V.Add(&c.Center)
		}
		return curve, nil
	}

	return nil, fmt.Errorf("unknown curve kind %q", c.Kind)
}

func buildSurface(ev *sweep.Evaluator, surf config.Surface, curves map[string]sweep.Curve) (*sweep.Mesh, error) {
	switch surf.Kind {
	case config.KindRevolve:
		return ev.SurfRev(curves[surf.Profile], surf.Steps)
	case config.KindGenCyl:
		return ev.GenCyl(curves[surf.Profile], curves[surf.Sweep])
	}

	return nil, fmt.Errorf("unknown surface kind %q", surf.Kind)
}

func writeMesh(path string, mesh *sweep.Mesh) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return obj.Write(f, mesh)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
