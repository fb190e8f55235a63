package graphics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute slots, bound before linking so both shaders agree on them.
const (
	AttribPosition uint32 = 0
	AttribTexCoord uint32 = 1
)

const (
	attribPositionName = "a_Position"
	attribTexCoordName = "a_TextureCoord"
	uniformMVPName     = "u_MVPMatrix"
	uniformTextureName = "u_TextureUnit"
)

// Program is a linked shader program with its two shaders still attached.
type Program struct {
	api            API
	ID             uint32
	vertexShader   uint32
	fragmentShader uint32
	mvpMatrix      int32
	textureUnit    int32
}

// NewProgram compiles and links vertexSrc and fragmentSrc. Anything created
// before a failure is released.
func NewProgram(api API, vertexSrc, fragmentSrc string) (*Program, error) {
	p := &Program{api: api}
	if err := p.build(vertexSrc, fragmentSrc); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *Program) build(vertexSrc, fragmentSrc string) error {
	var err error
	if p.vertexShader, err = p.api.CompileShader(VertexShader, vertexSrc); err != nil {
		return fmt.Errorf("failed to compile vertex shader: %w", err)
	}
	if p.fragmentShader, err = p.api.CompileShader(FragmentShader, fragmentSrc); err != nil {
		return fmt.Errorf("failed to compile fragment shader: %w", err)
	}
	if p.ID, err = p.api.CreateProgram(); err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}
	if err = p.api.AttachShader(p.ID, p.vertexShader); err != nil {
		return err
	}
	if err = p.api.AttachShader(p.ID, p.fragmentShader); err != nil {
		return err
	}
	if err = p.api.BindAttribLocation(p.ID, AttribPosition, attribPositionName); err != nil {
		return err
	}
	if err = p.api.BindAttribLocation(p.ID, AttribTexCoord, attribTexCoordName); err != nil {
		return err
	}
	if err = p.api.LinkProgram(p.ID); err != nil {
		return fmt.Errorf("failed to link program: %w", err)
	}
	if p.mvpMatrix, err = p.api.UniformLocation(p.ID, uniformMVPName); err != nil {
		return err
	}
	if p.textureUnit, err = p.api.UniformLocation(p.ID, uniformTextureName); err != nil {
		return err
	}
	return nil
}

// Use activates the program
func (p *Program) Use() error {
	return p.api.UseProgram(p.ID)
}

func (p *Program) SetMVPMatrix(m mgl32.Mat4) error {
	return p.api.UniformMatrix4(p.mvpMatrix, m)
}

// SetTextureUnit points the sampler at texture unit n.
func (p *Program) SetTextureUnit(n int32) error {
	return p.api.Uniform1i(p.textureUnit, n)
}

// Release disables the attribute arrays, detaches both shaders, deletes the
// program and then the shaders. Safe on a partially built program.
func (p *Program) Release() {
	p.api.DisableVertexAttribArray(AttribPosition)
	p.api.DisableVertexAttribArray(AttribTexCoord)
	if p.ID != 0 {
		if p.vertexShader != 0 {
			p.api.DetachShader(p.ID, p.vertexShader)
		}
		if p.fragmentShader != 0 {
			p.api.DetachShader(p.ID, p.fragmentShader)
		}
		p.api.DeleteProgram(p.ID)
		p.ID = 0
	}
	if p.vertexShader != 0 {
		p.api.DeleteShader(p.vertexShader)
		p.vertexShader = 0
	}
	if p.fragmentShader != 0 {
		p.api.DeleteShader(p.fragmentShader)
		p.fragmentShader = 0
	}
}
