package turtle

import (
	"fmt"
	"io"

	mt "github.com/rustyoz/Mtransform"
)

type svgElementKind int

const (
	polylineElement svgElementKind = iota
	polygonElement
)

// svgElement is one rendered SVG shape. Elements keep the order in which
// they were opened, so fill polygons sit below the strokes drawn while the
// region was open.
type svgElement struct {
	kind   svgElementKind
	color  RGB
	points []Tuple
}

// SVGSink collects drawing primitives as polyline and polygon elements
// and writes them out as an SVG document. World coordinates are mapped to
// the viewport with the origin at the canvas center and the y axis
// pointing up.
type SVGSink struct {
	Width, Height float64
	StrokeWidth   float64

	transform *mt.Transform
	color     RGB
	elements  []*svgElement
	current   *svgElement // open polyline, nil when the last segment did not connect
	region    *svgElement // open fill polygon
}

// NewSVGSink creates a sink for a width-by-height canvas. A positive
// scale magnifies world coordinates by that factor; a negative scale
// shrinks them by its magnitude.
func NewSVGSink(width, height, scale float64) *SVGSink {
	s := &SVGSink{
		Width:       width,
		Height:      height,
		StrokeWidth: 1,
		transform:   mt.NewTransform(),
	}
	if scale > 0 {
		s.transform.Scale(scale, scale)
	}
	if scale < 0 {
		s.transform.Scale(1.0/-scale, 1.0/-scale)
	}
	return s
}

// SetColor implements the Sink interface.
func (s *SVGSink) SetColor(c RGB) {
	s.color = c
	s.current = nil
}

// DrawLine implements the Sink interface. Consecutive segments that share
// an endpoint are merged into a single polyline.
func (s *SVGSink) DrawLine(from, to Tuple) {
	if s.current != nil && s.current.points[len(s.current.points)-1] == from {
		s.current.points = append(s.current.points, to)
		return
	}
	e := &svgElement{kind: polylineElement, color: s.color, points: []Tuple{from, to}}
	s.elements = append(s.elements, e)
	s.current = e
}

// BeginFill implements the Sink interface.
func (s *SVGSink) BeginFill() {
	e := &svgElement{kind: polygonElement}
	s.elements = append(s.elements, e)
	s.region = e
}

// AddFillVertex implements the Sink interface. Repeated vertices are
// collapsed; the interpreter emits both endpoints of every segment, so
// adjacent segments would otherwise double every corner.
func (s *SVGSink) AddFillVertex(p Tuple) {
	if s.region == nil {
		return
	}
	pts := s.region.points
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return
	}
	s.region.points = append(pts, p)
}

// EndFill implements the Sink interface. The polygon takes the color in
// effect when the region closes, the same convention as ImageSink.
func (s *SVGSink) EndFill() {
	if s.region != nil {
		s.region.color = s.color
	}
	s.region = nil
}

// viewport maps a world point to SVG viewport coordinates.
func (s *SVGSink) viewport(p Tuple) (float64, float64) {
	x, y := s.transform.Apply(p[0], p[1])
	return s.Width/2 + x, s.Height/2 - y
}

// WriteTo writes the collected elements as a complete SVG document.
// Degenerate elements (polylines with one point, polygons with fewer than
// three) are skipped.
func (s *SVGSink) WriteTo(w io.Writer) (int64, error) {
	var total int64

	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	err := write("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		s.Width, s.Height, s.Width, s.Height)
	if err != nil {
		return total, err
	}

	for _, e := range s.elements {
		points := ""
		for i, p := range e.points {
			x, y := s.viewport(p)
			if i > 0 {
				points += " "
			}
			points += fmt.Sprintf("%g,%g", x, y)
		}

		switch e.kind {
		case polylineElement:
			if len(e.points) < 2 {
				continue
			}
			err = write("<polyline points=\"%s\" fill=\"none\" stroke=\"rgb(%d,%d,%d)\" stroke-width=\"%g\"/>\n",
				points, e.color[0], e.color[1], e.color[2], s.StrokeWidth)
		case polygonElement:
			if len(e.points) < 3 {
				continue
			}
			err = write("<polygon points=\"%s\" fill=\"rgb(%d,%d,%d)\"/>\n",
				points, e.color[0], e.color[1], e.color[2])
		}
		if err != nil {
			return total, err
		}
	}

	err = write("</svg>\n")
	return total, err
}
