package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cardboard/internal/fov"
	"cardboard/internal/geom"
)

const (
	NearPlane          = 0.1
	FarPlane           = 60.0
	FieldOfViewDegrees = 70.0
	// EyeHeight is how far above the eye block's center the camera sits.
	EyeHeight = 2.12
)

// Camera handles the view and projection matrices. Its heading is the
// center angle of FOV.
type Camera struct {
	Eye    geom.Point3
	FOV    fov.FOV
	width  int
	height int
}

// NewCamera places a camera above eye looking along -z.
func NewCamera(eye geom.Point3, width, height int) *Camera {
	return &Camera{
		Eye:    eye,
		FOV:    fov.New(eye.XZ(), 0, mgl32.DegToRad(FieldOfViewDegrees)),
		width:  width,
		height: height,
	}
}

func (c *Camera) SetViewport(width, height int) {
	c.width, c.height = width, height
}

// ProjectionMatrix is a symmetric frustum whose horizontal extent is set by
// the field of view and whose vertical extent follows the aspect ratio.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(1)
	if c.width > 0 && c.height > 0 {
		aspect = float32(c.height) / float32(c.width)
	}
	right := float32(NearPlane * math.Tan(float64(mgl32.DegToRad(FieldOfViewDegrees))/2))
	top := right * aspect
	return mgl32.Frustum(-right, right, -top, top, NearPlane, FarPlane)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := mgl32.Vec3{float32(c.Eye.X), float32(c.Eye.Y) + EyeHeight, float32(c.Eye.Z)}
	s, co := math.Sincos(float64(c.FOV.CenterAngle))
	center := eye.Add(mgl32.Vec3{float32(s), 0, float32(-co)})
	return mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
}

// MVP returns projection * view. Blocks are already in world space.
func (c *Camera) MVP() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
