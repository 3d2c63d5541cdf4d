package system

import (
	"github.com/milk9111/hover/ecs"
	"github.com/milk9111/hover/ecs/component"
)

type FrameAnimationSystem struct{}

func NewFrameAnimationSystem() *FrameAnimationSystem {
	return &FrameAnimationSystem{}
}

func (a *FrameAnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.FrameSpriteComponent, func(e ecs.Entity, sprite *component.FrameSprite) {
		sprite.Advance()
	})
}
