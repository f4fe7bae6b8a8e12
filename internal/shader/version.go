package shader

import (
	"fmt"
	"strconv"
	"strings"
)

// API identifies the graphics API family of a context.
type API int

const (
	OpenGL API = iota
	OpenGLES
)

func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case OpenGLES:
		return "OpenGL ES"
	default:
		return fmt.Sprintf("API(%d)", int(a))
	}
}

// Version describes the API version reported by a graphics context.
type Version struct {
	API   API
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.API, v.Major, v.Minor)
}

// Less reports whether v is an older version than o within the same API.
// Versions of different APIs are ordered by API.
func (v Version) Less(o Version) bool {
	if v.API != o.API {
		return v.API < o.API
	}
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// ParseVersion parses a GL_VERSION string as returned by glGetString, e.g.
// "4.6.0 NVIDIA 535.54", "3.3 (Core Profile) Mesa 23.1.2" or
// "OpenGL ES 3.2 Mesa 23.1.2".
func ParseVersion(s string) (Version, error) {
	v := Version{API: OpenGL}
	rest := strings.TrimSpace(s)
	if strings.HasPrefix(rest, "OpenGL ES") {
		v.API = OpenGLES
		rest = strings.TrimPrefix(rest, "OpenGL ES")
		// OpenGL ES 1.x reports a profile suffix: "OpenGL ES-CM 1.1".
		if strings.HasPrefix(rest, "-") {
			if i := strings.IndexByte(rest, ' '); i >= 0 {
				rest = rest[i:]
			} else {
				rest = ""
			}
		}
		rest = strings.TrimSpace(rest)
	}
	num := rest
	if i := strings.IndexAny(num, " \t"); i >= 0 {
		num = num[:i]
	}
	parts := strings.Split(num, ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("parse version %q: missing minor version", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", s, err)
	}
	v.Major = major
	v.Minor = minor
	return v, nil
}
