// Package gles implements graphics.API on an OpenGL ES 2.0 context.
package gles

import (
	"fmt"
	"log"
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/mathgl/mgl32"

	"cardboard/internal/graphics"
)

// Context issues GL calls on the thread that owns the current context.
type Context struct{}

// Init loads the GL entry points. A context must be current.
func Init() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLES: %w", err)
	}
	log.Printf("gles: %s, %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Context{}, nil
}

// check turns a raised GL error flag into an *graphics.APIError.
func check(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return &graphics.APIError{Op: op, Code: graphics.Enum(code)}
	}
	return nil
}

// logged is check for release calls, which have no caller to report to.
func logged(op string) {
	if err := check(op); err != nil {
		log.Printf("gles: %v", err)
	}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask graphics.Enum) error {
	gl.Clear(uint32(mask))
	return check("Clear")
}

func (c *Context) Enable(capability graphics.Enum) error {
	gl.Enable(uint32(capability))
	return check("Enable")
}

func (c *Context) DepthFunc(fn graphics.Enum) error {
	gl.DepthFunc(uint32(fn))
	return check("DepthFunc")
}

func (c *Context) Viewport(x, y, width, height int32) error {
	gl.Viewport(x, y, width, height)
	return check("Viewport")
}

func (c *Context) GenTexture() (uint32, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture, check("GenTextures")
}

func (c *Context) ActiveTexture(unit graphics.Enum) error {
	gl.ActiveTexture(uint32(unit))
	return check("ActiveTexture")
}

func (c *Context) BindTexture(texture uint32) error {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	return check("BindTexture")
}

func (c *Context) TexParameter(name, value graphics.Enum) error {
	gl.TexParameteri(gl.TEXTURE_2D, uint32(name), int32(value))
	return check("TexParameteri")
}

func (c *Context) TexImage2D(width, height int32, rgba []byte) error {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	return check("TexImage2D")
}

func (c *Context) GenerateMipmap() error {
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return check("GenerateMipmap")
}

func (c *Context) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
	logged("DeleteTextures")
}

func (c *Context) CompileShader(kind graphics.Enum, source string) (uint32, error) {
	shader := gl.CreateShader(uint32(kind))
	if shader == 0 {
		if err := check("CreateShader"); err != nil {
			return 0, err
		}
		return 0, &graphics.APIError{Op: "CreateShader", Code: graphics.InvalidOperation}
	}
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("%s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, check("CompileShader")
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
	logged("DeleteShader")
}

func (c *Context) CreateProgram() (uint32, error) {
	program := gl.CreateProgram()
	if program == 0 {
		if err := check("CreateProgram"); err != nil {
			return 0, err
		}
		return 0, &graphics.APIError{Op: "CreateProgram", Code: graphics.InvalidOperation}
	}
	return program, nil
}

func (c *Context) AttachShader(program, shader uint32) error {
	gl.AttachShader(program, shader)
	return check("AttachShader")
}

func (c *Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
	logged("DetachShader")
}

func (c *Context) BindAttribLocation(program, index uint32, name string) error {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
	return check("BindAttribLocation")
}

func (c *Context) LinkProgram(program uint32) error {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return fmt.Errorf("%s", strings.TrimRight(infoLog, "\x00"))
	}
	return check("LinkProgram")
}

func (c *Context) UseProgram(program uint32) error {
	gl.UseProgram(program)
	return check("UseProgram")
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
	logged("DeleteProgram")
}

func (c *Context) UniformLocation(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if err := check("GetUniformLocation"); err != nil {
		return -1, err
	}
	if loc < 0 {
		return -1, fmt.Errorf("%w: %s", graphics.ErrUniformNotFound, name)
	}
	return loc, nil
}

func (c *Context) UniformMatrix4(location int32, m mgl32.Mat4) error {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
	return check("UniformMatrix4fv")
}

func (c *Context) Uniform1i(location int32, v int32) error {
	gl.Uniform1i(location, v)
	return check("Uniform1i")
}

func (c *Context) GenBuffer() (uint32, error) {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer, check("GenBuffers")
}

func (c *Context) BindBuffer(target graphics.Enum, buffer uint32) error {
	gl.BindBuffer(uint32(target), buffer)
	return check("BindBuffer")
}

func (c *Context) BufferData(target graphics.Enum, data []byte) error {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(uint32(target), len(data), gl.Ptr(data), gl.STATIC_DRAW)
	}
	return check("BufferData")
}

func (c *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
	logged("DeleteBuffers")
}

func (c *Context) EnableVertexAttribArray(index uint32) error {
	gl.EnableVertexAttribArray(index)
	return check("EnableVertexAttribArray")
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
	logged("DisableVertexAttribArray")
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ graphics.Enum, normalized bool, stride int32, offset int) error {
	gl.VertexAttribPointer(index, size, uint32(typ), normalized, stride, gl.PtrOffset(offset))
	return check("VertexAttribPointer")
}

func (c *Context) DrawElements(mode graphics.Enum, count int32, typ graphics.Enum) error {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(0))
	return check("DrawElements")
}

var _ graphics.API = (*Context)(nil)
