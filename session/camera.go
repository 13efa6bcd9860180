package session

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Camera is an orthographic view onto the world. Scale is world units per
// viewport unit, so a larger scale shows more of the world.
type Camera struct {
	Center mgl32.Vec2
	Scale  float32

	minScale, maxScale float32
	scaleStep          float32
	panSpeed           float32
}

// NewCamera returns a camera at the world origin using the configured zoom settings
func NewCamera(config utils.Config) *Camera {
	return &Camera{
		Scale:     config.CameraScale,
		minScale:  config.MinCameraScale,
		maxScale:  config.MaxCameraScale,
		scaleStep: config.CameraScaleStep,
		panSpeed:  config.CameraPanSpeed,
	}
}

// Pan moves the camera by (dx, dy) pan steps; positive dy moves up
func (c *Camera) Pan(dx, dy float32) {
	c.Center = c.Center.Add(mgl32.Vec2{dx, dy}.Mul(c.panSpeed))
}

// ZoomIn decreases the scale by one step
func (c *Camera) ZoomIn() {
	c.setScale(c.Scale - c.scaleStep)
}

// ZoomOut increases the scale by one step
func (c *Camera) ZoomOut() {
	c.setScale(c.Scale + c.scaleStep)
}

func (c *Camera) setScale(s float32) {
	c.Scale = mgl32.Clamp(s, c.minScale, c.maxScale)
}

// CenterCell returns the cell under the camera centre
func (c *Camera) CenterCell() model.Cell {
	return model.WorldToCell(c.Center)
}

// ScreenToCell maps a viewport position (origin top-left, Y down) to a cell
func (c *Camera) ScreenToCell(screen mgl32.Vec2, viewportWidth, viewportHeight float32) model.Cell {
	offset := mgl32.Vec2{
		(screen.X() - viewportWidth/2) * c.Scale,
		-(screen.Y() - viewportHeight/2) * c.Scale,
	}
	return model.WorldToCell(c.Center.Add(offset))
}

// ChunkToScreen returns the viewport position of a chunk's top-left corner
func (c *Camera) ChunkToScreen(key model.ChunkKey, viewportWidth, viewportHeight float32) mgl32.Vec2 {
	corner := mgl32.Vec2{
		float32(key.X) * model.ChunkWorldSize,
		-float32(key.Y) * model.ChunkWorldSize,
	}
	return mgl32.Vec2{
		(corner.X()-c.Center.X())/c.Scale + viewportWidth/2,
		(c.Center.Y()-corner.Y())/c.Scale + viewportHeight/2,
	}
}

// Visible returns the chunks that should be materialized for a viewport
func (c *Camera) Visible(viewportWidth, viewportHeight float32) model.ChunkSet {
	return model.VisibleChunks(c.Center, c.Scale, viewportWidth, viewportHeight)
}
