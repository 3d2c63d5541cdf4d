package component

import "github.com/hajimehoshi/ebiten/v2"

// FrameSprite cycles through Frames in Sequence order while Playing.
type FrameSprite struct {
	Frames   []*ebiten.Image
	Sequence []int
	Interval int
	Playing  bool

	cursor int
	ticks  int
}

// Current returns the image for the current sequence position.
func (s *FrameSprite) Current() *ebiten.Image {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	idx := 0
	if len(s.Sequence) > 0 {
		idx = s.Sequence[s.cursor%len(s.Sequence)]
	}
	if idx < 0 || idx >= len(s.Frames) {
		return nil
	}
	return s.Frames[idx]
}

// Advance steps the animation by one tick.
func (s *FrameSprite) Advance() {
	if s == nil || !s.Playing || len(s.Sequence) == 0 {
		return
	}
	interval := s.Interval
	if interval <= 0 {
		interval = 1
	}
	s.ticks++
	if s.ticks >= interval {
		s.ticks = 0
		s.cursor = (s.cursor + 1) % len(s.Sequence)
	}
}

// Position returns the index into Sequence.
func (s *FrameSprite) Position() int {
	if s == nil {
		return 0
	}
	return s.cursor
}

var FrameSpriteComponent = NewComponent[FrameSprite]()
