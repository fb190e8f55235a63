package graphics

import (
	"fmt"

	"cardboard/internal/meshing"
)

// MeshBuffers holds one chunk mesh on the GPU.
type MeshBuffers struct {
	api          API
	VertexBuffer uint32
	IndexBuffer  uint32
	IndexCount   int32
}

// UploadMesh copies v into a new vertex and index buffer pair.
func UploadMesh(api API, v *meshing.Vertices) (*MeshBuffers, error) {
	b := &MeshBuffers{api: api, IndexCount: int32(v.IndexCount())}
	if err := b.upload(v); err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}
	return b, nil
}

func (b *MeshBuffers) upload(v *meshing.Vertices) error {
	var err error
	if b.VertexBuffer, err = b.api.GenBuffer(); err != nil {
		return err
	}
	if b.IndexBuffer, err = b.api.GenBuffer(); err != nil {
		return err
	}
	if err = b.api.BindBuffer(ArrayBuffer, b.VertexBuffer); err != nil {
		return err
	}
	if err = b.api.BufferData(ArrayBuffer, v.VertexBytes()); err != nil {
		return err
	}
	if err = b.api.BindBuffer(ElementArrayBuffer, b.IndexBuffer); err != nil {
		return err
	}
	if err = b.api.BufferData(ElementArrayBuffer, v.IndexBytes()); err != nil {
		return err
	}
	if err = b.api.BindBuffer(ArrayBuffer, 0); err != nil {
		return err
	}
	return b.api.BindBuffer(ElementArrayBuffer, 0)
}

// Draw binds the buffers, points both attributes into the interleaved
// vertex data and draws the indexed triangles.
func (b *MeshBuffers) Draw() error {
	if err := b.api.BindBuffer(ArrayBuffer, b.VertexBuffer); err != nil {
		return err
	}
	stride := int32(meshing.VertexStride)
	if err := b.api.VertexAttribPointer(AttribPosition, 3, Float, false, stride, 0); err != nil {
		return err
	}
	if err := b.api.EnableVertexAttribArray(AttribPosition); err != nil {
		return err
	}
	if err := b.api.VertexAttribPointer(AttribTexCoord, 2, UnsignedShort, true, stride, meshing.TexCoordOffset); err != nil {
		return err
	}
	if err := b.api.EnableVertexAttribArray(AttribTexCoord); err != nil {
		return err
	}
	if err := b.api.BindBuffer(ElementArrayBuffer, b.IndexBuffer); err != nil {
		return err
	}
	return b.api.DrawElements(Triangles, b.IndexCount, UnsignedShort)
}

// Release deletes the index buffer, then the vertex buffer.
func (b *MeshBuffers) Release() {
	if b.IndexBuffer != 0 {
		b.api.DeleteBuffer(b.IndexBuffer)
		b.IndexBuffer = 0
	}
	if b.VertexBuffer != 0 {
		b.api.DeleteBuffer(b.VertexBuffer)
		b.VertexBuffer = 0
	}
}
