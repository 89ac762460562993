package turtle

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ImageSink rasterizes drawing primitives into an RGBA image. Line
// segments are stroked as thin quads and fill regions as polygons, both
// through the x/image vector rasterizer. World coordinates are mapped
// with the origin at the image center and the y axis pointing up.
type ImageSink struct {
	StrokeWidth float64

	img     *image.RGBA
	ras     *vector.Rasterizer
	color   color.RGBA
	filling bool
	region  []Tuple
}

// NewImageSink creates a sink rasterizing into a width-by-height image.
// The image starts fully transparent; use SetBackground to clear it.
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{
		StrokeWidth: 1,
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:         vector.NewRasterizer(width, height),
		color:       color.RGBA{A: 0xff},
	}
}

// Image returns the image the sink paints into.
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// SetBackground fills the whole image with c.
func (s *ImageSink) SetBackground(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// device maps a world point to device coordinates.
func (s *ImageSink) device(p Tuple) (float32, float32) {
	b := s.img.Bounds()
	return float32(float64(b.Dx())/2 + p[0]), float32(float64(b.Dy())/2 - p[1])
}

// SetColor implements the Sink interface. Components are taken modulo 256;
// out-of-range values are the caller's problem.
func (s *ImageSink) SetColor(c RGB) {
	s.color = color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 0xff}
}

// DrawLine implements the Sink interface. The segment is stroked as a
// StrokeWidth-wide quad; zero-length segments are skipped.
func (s *ImageSink) DrawLine(from, to Tuple) {
	x0, y0 := s.device(from)
	x1, y1 := s.device(to)

	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// unit normal scaled to half the stroke width
	nx := -dy / length * float32(s.StrokeWidth) / 2
	ny := dx / length * float32(s.StrokeWidth) / 2

	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.MoveTo(x0+nx, y0+ny)
	s.ras.LineTo(x1+nx, y1+ny)
	s.ras.LineTo(x1-nx, y1-ny)
	s.ras.LineTo(x0-nx, y0-ny)
	s.ras.ClosePath()
	s.ras.Draw(s.img, b, image.NewUniform(s.color), image.Point{})
}

// BeginFill implements the Sink interface.
func (s *ImageSink) BeginFill() {
	s.filling = true
	s.region = s.region[:0]
}

// AddFillVertex implements the Sink interface.
func (s *ImageSink) AddFillVertex(p Tuple) {
	if !s.filling {
		return
	}
	if n := len(s.region); n > 0 && s.region[n-1] == p {
		return
	}
	s.region = append(s.region, p)
}

// EndFill implements the Sink interface. The collected vertices are
// rasterized as a closed polygon.
func (s *ImageSink) EndFill() {
	s.filling = false
	if len(s.region) < 3 {
		return
	}

	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	for i, p := range s.region {
		x, y := s.device(p)
		if i == 0 {
			s.ras.MoveTo(x, y)
		} else {
			s.ras.LineTo(x, y)
		}
	}
	s.ras.ClosePath()
	s.ras.Draw(s.img, b, image.NewUniform(s.color), image.Point{})
}
