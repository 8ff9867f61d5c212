package scene

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/iburimskiy/mind-map/internal/graph"
)

// nearPlane is the closest depth that is still drawn.
const nearPlane = 0.1

type vec3 struct {
	x, y, z float32
}

func toVec3(v graph.Vec3) vec3 {
	return vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (a vec3) sub(b vec3) vec3 {
	return vec3{a.x - b.x, a.y - b.y, a.z - b.z}
}

func (a vec3) dot(b vec3) float32 {
	return a.x*b.x + a.y*b.y + a.z*b.z
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a.y*b.z - a.z*b.y,
		a.z*b.x - a.x*b.z,
		a.x*b.y - a.y*b.x,
	}
}

func (a vec3) normal() vec3 {
	l := math32.Sqrt(a.dot(a))
	if l == 0 {
		return a
	}
	return vec3{a.x / l, a.y / l, a.z / l}
}

// Projected is a point in screen space.
type Projected struct {
	X, Y float32
	// Depth is the distance along the view axis.
	Depth float32
	// Scale converts a world-space length at this depth into pixels.
	Scale float32
}

// Camera is a perspective camera looking at a target with positive Y up.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV           float32
	Width, Height float32

	eye, target       vec3
	right, up, toward vec3
	focal             float32
}

func NewCamera(fov float64, width, height int) *Camera {
	cm := &Camera{
		FOV:    float32(fov),
		Width:  float32(width),
		Height: float32(height),
	}
	cm.LookAt(graph.Vec3{Z: 10}, graph.Vec3{})
	return cm
}

// LookAt places the camera at eye pointing at target.
func (cm *Camera) LookAt(eye, target graph.Vec3) {
	cm.eye = toVec3(eye)
	cm.target = toVec3(target)

	cm.toward = cm.target.sub(cm.eye).normal()
	worldUp := vec3{0, 1, 0}
	cm.right = cm.toward.cross(worldUp).normal()
	if cm.right == (vec3{}) {
		// Looking straight up or down; any horizontal right vector works.
		cm.right = vec3{1, 0, 0}
	}
	cm.up = cm.right.cross(cm.toward)

	halfFOV := cm.FOV * 0.5 * float32(math.Pi) / 180
	cm.focal = 1 / math32.Tan(halfFOV)
}

// Project maps a world point to the screen. ok is false for points at or
// behind the near plane.
func (cm *Camera) Project(p graph.Vec3) (Projected, bool) {
	rel := toVec3(p).sub(cm.eye)
	depth := rel.dot(cm.toward)
	if depth <= nearPlane {
		return Projected{}, false
	}

	scale := cm.focal / depth * cm.Height * 0.5
	return Projected{
		X:     cm.Width*0.5 + rel.dot(cm.right)*scale,
		Y:     cm.Height*0.5 - rel.dot(cm.up)*scale,
		Depth: depth,
		Scale: scale,
	}, true
}
