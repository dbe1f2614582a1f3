package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/odekit/internal/dynamo"
)

// Point is one vertex of a plotted path.
type Point struct{ X, Y float64 }

// PhasePoints pairs components i and j of every state in tr.
func PhasePoints(tr *dynamo.Trajectory, i, j int) ([]Point, error) {
	if tr.Len() == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}
	dim := len(tr.States[0])
	if i < 0 || i >= dim || j < 0 || j >= dim {
		return nil, fmt.Errorf("components (%d, %d) out of range for dimension %d", i, j, dim)
	}
	pts := make([]Point, tr.Len())
	for k, u := range tr.States {
		pts[k] = Point{u[i], u[j]}
	}
	return pts, nil
}

// SeriesPoints pairs each time with component i of the state.
func SeriesPoints(tr *dynamo.Trajectory, i int) ([]Point, error) {
	if tr.Len() == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}
	if i < 0 || i >= len(tr.States[0]) {
		return nil, fmt.Errorf("component %d out of range", i)
	}
	pts := make([]Point, tr.Len())
	for k, u := range tr.States {
		pts[k] = Point{tr.Times[k], u[i]}
	}
	return pts, nil
}

// WriteSVG renders points as a single polyline scaled to width x height with 10% padding.
func WriteSVG(w io.Writer, points []Point, width, height int, strokeColor string) error {
	if len(points) < 2 {
		return fmt.Errorf("need at least 2 points, got %d", len(points))
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	_, err := io.WriteString(w, sb.String())
	return err
}
