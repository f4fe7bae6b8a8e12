package render

import (
	"fmt"
	"strings"
)

// Vertex is one corner of the image quad: clip-space position and texture
// coordinate.
type Vertex struct {
	X, Y float32
	U, V float32
}

// QuadVertices is the unit quad covering clip space. Texture rows run top to
// bottom, so V is flipped against Y.
var QuadVertices = [4]Vertex{
	{X: -1, Y: -1, U: 0, V: 1},
	{X: -1, Y: 1, U: 0, V: 0},
	{X: 1, Y: 1, U: 1, V: 0},
	{X: 1, Y: -1, U: 1, V: 1},
}

// QuadIndices draws QuadVertices as a triangle strip.
var QuadIndices = [4]uint16{1, 2, 0, 3}

// VertexStride is the size in bytes of one interleaved Vertex.
const VertexStride = 4 * 4

// Interleaved returns QuadVertices as x, y, u, v floats.
func Interleaved() []float32 {
	out := make([]float32, 0, len(QuadVertices)*4)
	for _, v := range QuadVertices {
		out = append(out, v.X, v.Y, v.U, v.V)
	}
	return out
}

// Filter selects the texture magnification filter.
type Filter int

const (
	Linear Filter = iota
	Nearest
)

func (f Filter) String() string {
	if f == Nearest {
		return "nearest"
	}
	return "linear"
}

// ParseFilter accepts "linear" or "nearest". An empty string is linear.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "nearest":
		return Nearest, nil
	}
	return Linear, fmt.Errorf("unknown filter %q", s)
}
