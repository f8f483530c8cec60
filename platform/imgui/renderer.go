package imgui

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	"github.com/inkyblackness/imgui-go/v4"
)

// Shaders holds the GLSL sources of the UI program
var Shaders = packr.NewBox("./shaders")

// Shader file names inside the Shaders box
const (
	VertexShader   = "ui.vert.glsl"
	FragmentShader = "ui.frag.glsl"
)

// renderer draws imgui draw data with OpenGL 3.2 core
type renderer struct {
	program     uint32
	fontTexture uint32
	vbo         uint32
	ebo         uint32

	locTexture  int32
	locProjMtx  int32
	locPosition int32
	locUV       int32
	locColor    int32
}

func newRenderer(io imgui.IO) (*renderer, error) {
	vertex, err := Shaders.FindString(VertexShader)
	if err != nil {
		return nil, errors.New("packr.FindString(): " + err.Error())
	}
	fragment, err := Shaders.FindString(FragmentShader)
	if err != nil {
		return nil, errors.New("packr.FindString(): " + err.Error())
	}

	program, err := linkProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		program:     program,
		locTexture:  gl.GetUniformLocation(program, gl.Str("Texture\x00")),
		locProjMtx:  gl.GetUniformLocation(program, gl.Str("ProjMtx\x00")),
		locPosition: gl.GetAttribLocation(program, gl.Str("Position\x00")),
		locUV:       gl.GetAttribLocation(program, gl.Str("UV\x00")),
		locColor:    gl.GetAttribLocation(program, gl.Str("Color\x00")),
	}
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	r.createFontTexture(io)
	return r, nil
}

func (r *renderer) createFontTexture(io imgui.IO) {
	fonts := io.Fonts()
	img := fonts.TextureDataRGBA32()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, img.Pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	fonts.SetTextureID(imgui.TextureID(r.fontTexture))
}

// render draws the data. displaySize is in window coordinates,
// framebufferSize in pixels.
func (r *renderer) render(displaySize, framebufferSize imgui.Vec2, data imgui.DrawData) {
	if displaySize.X <= 0 || displaySize.Y <= 0 || framebufferSize.X <= 0 || framebufferSize.Y <= 0 {
		return
	}
	data.ScaleClipRects(imgui.Vec2{
		X: framebufferSize.X / displaySize.X,
		Y: framebufferSize.Y / displaySize.Y,
	})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(framebufferSize.X), int32(framebufferSize.Y))

	ortho := projection(displaySize)
	gl.UseProgram(r.program)
	gl.Uniform1i(r.locTexture, 0)
	gl.UniformMatrix4fv(r.locProjMtx, 1, false, &ortho[0])
	gl.ActiveTexture(gl.TEXTURE0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(uint32(r.locPosition))
	gl.EnableVertexAttribArray(uint32(r.locUV))
	gl.EnableVertexAttribArray(uint32(r.locColor))

	vertexSize, offsetPos, offsetUV, offsetColor := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(uint32(r.locPosition), 2, gl.FLOAT, false, int32(vertexSize), uintptr(offsetPos))
	gl.VertexAttribPointerWithOffset(uint32(r.locUV), 2, gl.FLOAT, false, int32(vertexSize), uintptr(offsetUV))
	gl.VertexAttribPointerWithOffset(uint32(r.locColor), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(offsetColor))

	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range data.CommandLists() {
		vertices, verticesSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, verticesSize, vertices, gl.STREAM_DRAW)

		indices, indicesSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indicesSize, indices, gl.STREAM_DRAW)

		var offset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.Scissor(int32(clip.X), int32(framebufferSize.Y)-int32(clip.W),
					int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, offset)
			}
			offset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	gl.DeleteVertexArrays(1, &vao)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
}

// projection maps window coordinates, origin top left, to clip space
func projection(displaySize imgui.Vec2) glm.Mat4 {
	return glm.Ortho(0, displaySize.X, displaySize.Y, 0, -1, 1)
}

func (r *renderer) destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteTextures(1, &r.fontTexture)
	gl.DeleteProgram(r.program)
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		info := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(info))
		gl.DeleteProgram(program)
		return 0, errors.New("gl.LinkProgram(): " + strings.TrimRight(info, "\x00"))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	sources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, sources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		info := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(info))
		gl.DeleteShader(shader)
		return 0, errors.New("gl.CompileShader(): " + strings.TrimRight(info, "\x00"))
	}
	return shader, nil
}
