package prefabs

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	acoFrameW     = 32
	acoFrameH     = 48
	acoFrameCount = 8
)

var (
	acoSkin  = color.RGBA{R: 0xf5, G: 0xd0, B: 0xa9, A: 0xff}
	acoHair  = color.RGBA{R: 0x5a, G: 0x3a, B: 0x22, A: 0xff}
	acoDress = color.RGBA{R: 0xd9, G: 0x4f, B: 0x70, A: 0xff}
	acoLegs  = color.RGBA{R: 0x33, G: 0x33, B: 0x44, A: 0xff}
)

// AcoFrames draws the walk cycle used by the row sprites. Frame i swings
// the arms and legs by a step that depends on i.
func AcoFrames() []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, acoFrameCount)
	for i := 0; i < acoFrameCount; i++ {
		frames = append(frames, drawAcoFrame(i))
	}
	return frames
}

func drawAcoFrame(i int) *ebiten.Image {
	img := ebiten.NewImage(acoFrameW, acoFrameH)
	swing := float32(i%4-1) * 2

	// legs
	vector.FillRect(img, 11-swing/2, 36, 4, 12, acoLegs, false)
	vector.FillRect(img, 17+swing/2, 36, 4, 12, acoLegs, false)
	// dress
	vector.FillRect(img, 8, 20, 16, 17, acoDress, false)
	// arms
	vector.FillRect(img, 4, 21+swing, 4, 10, acoSkin, false)
	vector.FillRect(img, 24, 21-swing, 4, 10, acoSkin, false)
	// head
	vector.FillCircle(img, 16, 11, 9, acoHair, true)
	vector.FillCircle(img, 16, 13, 7, acoSkin, true)
	vector.FillRect(img, 12, 12, 2, 2, color.Black, false)
	vector.FillRect(img, 18, 12, 2, 2, color.Black, false)
	return img
}
