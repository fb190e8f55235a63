// Package graphicstest provides an in-memory graphics.API for tests.
package graphicstest

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"cardboard/internal/graphics"
)

// Call is one recorded API call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Op + "(" + strings.Join(parts, ", ") + ")"
}

// Recorder implements graphics.API by recording calls and tracking live
// objects. Set Fail to make an operation return an error.
type Recorder struct {
	Calls []Call
	// Fail maps an operation name to the GL error it should raise.
	Fail map[string]graphics.Enum

	Textures map[uint32]bool
	Shaders  map[uint32]bool
	Programs map[uint32]bool
	Buffers  map[uint32]bool
	// Uploads holds the last BufferData upload per buffer.
	Uploads map[uint32][]byte

	MVP          mgl32.Mat4
	LastViewport [4]int32
	DrawCalls    []int32

	next  uint32
	bound map[graphics.Enum]uint32
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Fail:     make(map[string]graphics.Enum),
		Textures: make(map[uint32]bool),
		Shaders:  make(map[uint32]bool),
		Programs: make(map[uint32]bool),
		Buffers:  make(map[uint32]bool),
		Uploads:  make(map[uint32][]byte),
		bound:    make(map[graphics.Enum]uint32),
	}
}

// Live counts objects created and not yet deleted.
func (r *Recorder) Live() int {
	return len(r.Textures) + len(r.Shaders) + len(r.Programs) + len(r.Buffers)
}

// Ops lists the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps live objects.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.DrawCalls = nil
}

func (r *Recorder) record(op string, args ...any) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	if code, ok := r.Fail[op]; ok {
		return &graphics.APIError{Op: op, Code: code}
	}
	return nil
}

func (r *Recorder) gen() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask graphics.Enum) error {
	return r.record("Clear", mask)
}

func (r *Recorder) Enable(capability graphics.Enum) error {
	return r.record("Enable", capability)
}

func (r *Recorder) DepthFunc(fn graphics.Enum) error {
	return r.record("DepthFunc", fn)
}

func (r *Recorder) Viewport(x, y, width, height int32) error {
	if err := r.record("Viewport", x, y, width, height); err != nil {
		return err
	}
	r.LastViewport = [4]int32{x, y, width, height}
	return nil
}

func (r *Recorder) GenTexture() (uint32, error) {
	if err := r.record("GenTexture"); err != nil {
		return 0, err
	}
	id := r.gen()
	r.Textures[id] = true
	return id, nil
}

func (r *Recorder) ActiveTexture(unit graphics.Enum) error {
	return r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(texture uint32) error {
	return r.record("BindTexture", texture)
}

func (r *Recorder) TexParameter(name, value graphics.Enum) error {
	return r.record("TexParameter", name, value)
}

func (r *Recorder) TexImage2D(width, height int32, rgba []byte) error {
	if err := r.record("TexImage2D", width, height, len(rgba)); err != nil {
		return err
	}
	if int(width)*int(height)*4 != len(rgba) {
		return &graphics.APIError{Op: "TexImage2D", Code: graphics.InvalidValue}
	}
	return nil
}

func (r *Recorder) GenerateMipmap() error {
	return r.record("GenerateMipmap")
}

func (r *Recorder) DeleteTexture(texture uint32) {
	r.record("DeleteTexture", texture)
	delete(r.Textures, texture)
}

func (r *Recorder) CompileShader(kind graphics.Enum, source string) (uint32, error) {
	if err := r.record("CompileShader", kind); err != nil {
		return 0, err
	}
	id := r.gen()
	r.Shaders[id] = true
	return id, nil
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
	delete(r.Shaders, shader)
}

func (r *Recorder) CreateProgram() (uint32, error) {
	if err := r.record("CreateProgram"); err != nil {
		return 0, err
	}
	id := r.gen()
	r.Programs[id] = true
	return id, nil
}

func (r *Recorder) AttachShader(program, shader uint32) error {
	return r.record("AttachShader", program, shader)
}

func (r *Recorder) DetachShader(program, shader uint32) {
	r.record("DetachShader", program, shader)
}

func (r *Recorder) BindAttribLocation(program, index uint32, name string) error {
	return r.record("BindAttribLocation", program, index, name)
}

func (r *Recorder) LinkProgram(program uint32) error {
	return r.record("LinkProgram", program)
}

func (r *Recorder) UseProgram(program uint32) error {
	return r.record("UseProgram", program)
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	delete(r.Programs, program)
}

func (r *Recorder) UniformLocation(program uint32, name string) (int32, error) {
	if err := r.record("UniformLocation", program, name); err != nil {
		return -1, err
	}
	switch name {
	case "u_MVPMatrix":
		return 0, nil
	case "u_TextureUnit":
		return 1, nil
	}
	return -1, fmt.Errorf("%w: %s", graphics.ErrUniformNotFound, name)
}

func (r *Recorder) UniformMatrix4(location int32, m mgl32.Mat4) error {
	if err := r.record("UniformMatrix4", location); err != nil {
		return err
	}
	r.MVP = m
	return nil
}

func (r *Recorder) Uniform1i(location int32, v int32) error {
	return r.record("Uniform1i", location, v)
}

func (r *Recorder) GenBuffer() (uint32, error) {
	if err := r.record("GenBuffer"); err != nil {
		return 0, err
	}
	id := r.gen()
	r.Buffers[id] = true
	return id, nil
}

func (r *Recorder) BindBuffer(target graphics.Enum, buffer uint32) error {
	if err := r.record("BindBuffer", target, buffer); err != nil {
		return err
	}
	r.bound[target] = buffer
	return nil
}

func (r *Recorder) BufferData(target graphics.Enum, data []byte) error {
	if err := r.record("BufferData", target, len(data)); err != nil {
		return err
	}
	buf := r.bound[target]
	if buf == 0 {
		return &graphics.APIError{Op: "BufferData", Code: graphics.InvalidOperation}
	}
	r.Uploads[buf] = append([]byte(nil), data...)
	return nil
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", buffer)
	delete(r.Buffers, buffer)
	delete(r.Uploads, buffer)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) error {
	return r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ graphics.Enum, normalized bool, stride int32, offset int) error {
	return r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (r *Recorder) DrawElements(mode graphics.Enum, count int32, typ graphics.Enum) error {
	if err := r.record("DrawElements", mode, count, typ); err != nil {
		return err
	}
	r.DrawCalls = append(r.DrawCalls, count)
	return nil
}

var _ graphics.API = (*Recorder)(nil)
