// Package shader selects the GLSL sources used to draw the image quad for the
// version of the active graphics context.
//
// Tiers are listed from newest to oldest and the first tier a version
// satisfies wins. Every OpenGL version from 1.4 up to, but not including, the
// exact top tier resolves to the 1.4 family, so newer drivers still get the
// most widely supported sources.
package shader

// Program is a backend handle for a linked shader program.
type Program uint32

// Names shared by every tier's sources.
const (
	AttribPosition  = "position"
	AttribTexCoords = "tex_coords"
	UniformMatrix   = "matrix"
	UniformTexture  = "tex"
)

// Tier is a vertex/fragment source pair bound to a minimum API version.
type Tier struct {
	// Name is the API version the tier was written against, e.g. "1.4".
	Name string
	// Min is the oldest version the tier supports.
	Min Version
	// Exact restricts the tier to Min only.
	Exact bool
	// Fallback marks the tier used when nothing else matches.
	Fallback bool

	Vertex   string
	Fragment string
}

// Supports reports whether the tier can serve a context of version v.
func (t Tier) Supports(v Version) bool {
	switch {
	case t.Fallback:
		return true
	case t.Exact:
		return v == t.Min
	default:
		return v.API == t.Min.API && !v.Less(t.Min)
	}
}

// Tiers is the ordered tier table, newest first. The last entry is the
// fallback.
var Tiers = []Tier{
	{
		Name:  "4.6",
		Min:   Version{API: OpenGL, Major: 4, Minor: 6},
		Exact: true,
		Vertex: `#version 460
precision highp float;

in vec2 position;
in vec2 tex_coords;

out vec2 v_tex_coords;

uniform mat4 matrix;

void main() {
	v_tex_coords = tex_coords;
	gl_Position = matrix * vec4(position, 0.0, 1.0);
}
`,
		Fragment: `#version 460
precision highp float;

in vec2 v_tex_coords;

out vec4 color;

uniform sampler2D tex;

void main() {
	color = texture(tex, v_tex_coords);
}
`,
	},
	{
		Name: "1.4",
		Min:  Version{API: OpenGL, Major: 1, Minor: 4},
		Vertex: `#version 140
in vec2 position;
in vec2 tex_coords;
out vec2 v_tex_coords;
uniform mat4 matrix;
void main() {
	v_tex_coords = tex_coords;
	gl_Position = matrix * vec4(position, 0.0, 1.0);
}
`,
		Fragment: `#version 140
in vec2 v_tex_coords;
out vec4 color;
uniform sampler2D tex;
void main() {
	color = texture(tex, v_tex_coords);
}
`,
	},
	{
		Name:     "1.0",
		Min:      Version{API: OpenGL, Major: 1, Minor: 0},
		Fallback: true,
		Vertex: `#version 100
attribute lowp vec2 position;
attribute lowp vec2 tex_coords;
varying lowp vec2 v_tex_coords;
uniform lowp mat4 matrix;
void main() {
	v_tex_coords = tex_coords;
	gl_Position = matrix * vec4(position, 0.0, 1.0);
}
`,
		Fragment: `#version 100
varying lowp vec2 v_tex_coords;
uniform lowp sampler2D tex;
void main() {
	gl_FragColor = texture2D(tex, v_tex_coords);
}
`,
	},
}

// Select returns the first tier in Tiers that supports v.
func Select(v Version) Tier {
	for _, t := range Tiers {
		if t.Supports(v) {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

// Rank returns the position of the tier in Tiers counted from the oldest
// (0 is the fallback). It returns -1 for tiers not in the table.
func Rank(t Tier) int {
	for i := range Tiers {
		if Tiers[i].Name == t.Name {
			return len(Tiers) - 1 - i
		}
	}
	return -1
}
