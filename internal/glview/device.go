//go:build cgo

package glview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/shader"
	"github.com/example/liv/internal/viewport"
)

// gpuMemoryAvailable is GPU_MEMORY_INFO_CURRENT_AVAILABLE_VIDMEM_NVX.
const gpuMemoryAvailable = 0x9049

type gpuState struct {
	vbo, ibo   uint32
	imageTex   uint32
	overlayTex uint32

	program   uint32
	matrixLoc int32
	texLoc    int32

	versionString string
	version       shader.Version
	versionKnown  bool
}

func (g *gpuState) release() {
	if g.overlayTex != 0 {
		gl.DeleteTextures(1, &g.overlayTex)
		g.overlayTex = 0
	}
	if g.imageTex != 0 {
		gl.DeleteTextures(1, &g.imageTex)
		g.imageTex = 0
	}
	if g.ibo != 0 {
		gl.DeleteBuffers(1, &g.ibo)
		g.ibo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
}

// UploadImage stores img as the image texture and builds the quad buffers.
func (w *Window) UploadImage(img *image.RGBA) error {
	g := &w.gpu
	if g.vbo == 0 {
		verts := render.Interleaved()
		gl.GenBuffers(1, &g.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

		idx := render.QuadIndices
		gl.GenBuffers(1, &g.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*2, gl.Ptr(&idx[0]), gl.STATIC_DRAW)
	}
	if g.imageTex == 0 {
		g.imageTex = newTexture()
	}
	uploadTexture(g.imageTex, img)
	return checkError("upload image")
}

func newTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return tex
}

func uploadTexture(tex uint32, img *image.RGBA) {
	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[img.PixOffset(b.Min.X, b.Min.Y)]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}

// Acquire prepares the default framebuffer for a frame of the given size.
func (w *Window) Acquire(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear fills the frame with c.
func (w *Window) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// VersionString returns GL_VERSION as reported by the driver.
func (w *Window) VersionString() string {
	w.Version()
	return w.gpu.versionString
}

// Version returns the parsed context version. An unparseable string yields
// the zero Version, which selects the fallback shader tier.
func (w *Window) Version() shader.Version {
	g := &w.gpu
	if !g.versionKnown {
		g.versionString = gl.GoStr(gl.GetString(gl.VERSION))
		g.version, _ = shader.ParseVersion(g.versionString)
		g.versionKnown = true
	}
	return g.version
}

// Renderer returns GL_RENDERER.
func (w *Window) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

// FreeVideoMemory returns the available video memory in KiB when the driver
// exposes it.
func (w *Window) FreeVideoMemory() (int, bool) {
	if !glfw.ExtensionSupported("GL_NVX_gpu_memory_info") {
		return 0, false
	}
	var kb int32
	gl.GetIntegerv(gpuMemoryAvailable, &kb)
	return int(kb), gl.GetError() == gl.NO_ERROR
}

// Compile builds the program for tier t.
func (w *Window) Compile(t shader.Tier) (shader.Program, error) {
	vs, err := compileShader(t.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(t.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.BindAttribLocation(prog, 0, gl.Str(shader.AttribPosition+"\x00"))
	gl.BindAttribLocation(prog, 1, gl.Str(shader.AttribTexCoords+"\x00"))
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link error: %s", strings.TrimRight(msg, "\x00"))
	}
	return shader.Program(prog), nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(msg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(msg, "\x00"))
	}
	return sh, nil
}

// Release deletes a program returned by Compile.
func (w *Window) Release(p shader.Program) {
	if uint32(p) == w.gpu.program {
		w.gpu.program = 0
	}
	gl.DeleteProgram(uint32(p))
}

// Use makes p the active program and looks up its uniforms.
func (w *Window) Use(p shader.Program) {
	g := &w.gpu
	if g.program == uint32(p) {
		return
	}
	g.program = uint32(p)
	gl.UseProgram(g.program)
	g.matrixLoc = gl.GetUniformLocation(g.program, gl.Str(shader.UniformMatrix+"\x00"))
	g.texLoc = gl.GetUniformLocation(g.program, gl.Str(shader.UniformTexture+"\x00"))
}

// DrawImage draws the image texture with transform t.
func (w *Window) DrawImage(t viewport.Transform, f render.Filter) error {
	if w.gpu.imageTex == 0 {
		return errors.New("draw image: no image uploaded")
	}
	w.drawQuad(w.gpu.imageTex, t, f)
	return checkError("draw image")
}

// DrawOverlay draws layer over the whole frame. layer must match the frame
// size.
func (w *Window) DrawOverlay(layer *image.RGBA) error {
	g := &w.gpu
	if g.overlayTex == 0 {
		g.overlayTex = newTexture()
	}
	uploadTexture(g.overlayTex, layer)
	w.drawQuad(g.overlayTex, viewport.Identity(), render.Nearest)
	return checkError("draw overlay")
}

func (w *Window) drawQuad(tex uint32, t viewport.Transform, f render.Filter) {
	g := &w.gpu
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	filter := int32(gl.LINEAR)
	if f == render.Nearest {
		filter = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)

	m := t.Mat4()
	gl.UniformMatrix4fv(g.matrixLoc, 1, false, &m[0])
	gl.Uniform1i(g.texLoc, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ibo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, render.VertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, render.VertexStride, gl.PtrOffset(8))

	gl.DrawElements(gl.TRIANGLE_STRIP, int32(len(render.QuadIndices)), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

// Present swaps the back buffer.
func (w *Window) Present() error {
	w.win.SwapBuffers()
	return nil
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%04x", op, code)
	}
	return nil
}
