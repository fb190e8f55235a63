// Package graphics draws chunk meshes through a small OpenGL ES 2.0 style
// API. The API is an interface so the renderer can run against a recorder
// in tests and against the driver in the app.
package graphics

import "github.com/go-gl/mathgl/mgl32"

// Enum is a GL enumerant. Values match the GL headers.
type Enum uint32

const (
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506

	DepthBufferBit Enum = 0x0100
	ColorBufferBit Enum = 0x4000

	CullFace  Enum = 0x0B44
	DepthTest Enum = 0x0B71
	Less      Enum = 0x0201
	LEqual    Enum = 0x0203

	Texture0            Enum = 0x84C0
	TextureMinFilter    Enum = 0x2801
	TextureMagFilter    Enum = 0x2800
	TextureWrapS        Enum = 0x2802
	TextureWrapT        Enum = 0x2803
	Nearest             Enum = 0x2600
	NearestMipmapLinear Enum = 0x2702
	ClampToEdge         Enum = 0x812F

	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30

	Triangles          Enum = 0x0004
	UnsignedShort      Enum = 0x1403
	Float              Enum = 0x1406
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
)

// API is the subset of OpenGL ES 2.0 the renderer uses. Calls that can fail
// return an *APIError. Release calls log failures instead since there is
// nothing left to do about them. Texture calls target TEXTURE_2D.
type API interface {
	ClearColor(r, g, b, a float32)
	Clear(mask Enum) error
	Enable(capability Enum) error
	DepthFunc(fn Enum) error
	Viewport(x, y, width, height int32) error

	GenTexture() (uint32, error)
	ActiveTexture(unit Enum) error
	BindTexture(texture uint32) error
	TexParameter(name, value Enum) error
	TexImage2D(width, height int32, rgba []byte) error
	GenerateMipmap() error
	DeleteTexture(texture uint32)

	// CompileShader creates and compiles a shader, returning the info log
	// in the error on failure.
	CompileShader(kind Enum, source string) (uint32, error)
	DeleteShader(shader uint32)
	CreateProgram() (uint32, error)
	AttachShader(program, shader uint32) error
	DetachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string) error
	// LinkProgram links and returns the info log in the error on failure.
	LinkProgram(program uint32) error
	UseProgram(program uint32) error
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) (int32, error)
	UniformMatrix4(location int32, m mgl32.Mat4) error
	Uniform1i(location int32, v int32) error

	GenBuffer() (uint32, error)
	BindBuffer(target Enum, buffer uint32) error
	BufferData(target Enum, data []byte) error
	DeleteBuffer(buffer uint32)
	EnableVertexAttribArray(index uint32) error
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int) error
	DrawElements(mode Enum, count int32, typ Enum) error
}
