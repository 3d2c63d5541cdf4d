package system

import "testing"

func TestTooltipRect(t *testing.T) {
	c := &fakeCursor{x: 10, y: 10}
	v := newTestView(c)
	r := NewTooltipRenderer(v)

	if _, _, _, _, ok := r.Rect(100, 50); ok {
		t.Fatalf("expected nothing to draw without a title")
	}

	v.SetTooltip("aco1")
	v.Poll()
	x, y, w, h, ok := r.Rect(100, 50)
	if !ok {
		t.Fatalf("expected a tooltip rect")
	}
	if x != 10+tooltipOffsetX || y != 10+tooltipOffsetY {
		t.Fatalf("expected tooltip offset from cursor, got (%v,%v)", x, y)
	}
	if w <= tooltipPadding*2 || h <= tooltipPadding*2 {
		t.Fatalf("expected padded size, got %vx%v", w, h)
	}

	// Near the bottom-right corner the box flips inside the screen.
	c.x, c.y = 99, 49
	v.Poll()
	x, y, w, h, _ = r.Rect(100, 50)
	if x+w > 100 || y+h > 50 || x < 0 || y < 0 {
		t.Fatalf("tooltip escaped the screen: (%v,%v %vx%v)", x, y, w, h)
	}
}
