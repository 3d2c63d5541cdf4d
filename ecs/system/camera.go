package system

import (
	"math"

	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
)

// CameraPanSystem sweeps the camera across the first quarter of its width,
// wrapping back to 0.
type CameraPanSystem struct {
	camEntity ecs.Entity
	frames    int
	Paused    bool
}

func NewCameraPanSystem() *CameraPanSystem {
	return &CameraPanSystem{}
}

// Reset forgets the camera and restarts the sweep. Paused is kept.
func (cs *CameraPanSystem) Reset() {
	cs.camEntity = 0
	cs.frames = 0
}

func (cs *CameraPanSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	if cs.Paused {
		return
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}

	cs.frames++
	span := cam.Width / 4
	if span <= 0 {
		return
	}
	t.X = math.Mod(float64(cs.frames), span)
}
