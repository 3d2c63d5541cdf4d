package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec("scene.yaml")
	if err != nil {
		t.Fatalf("load scene.yaml: %v", err)
	}
	if spec.Rows.Count != 5 || spec.Rows.Spacing != 50 {
		t.Fatalf("unexpected rows %+v", spec.Rows)
	}
	if spec.Camera.ScaleX != 1.25 || spec.Camera.AnchorX != 0.2 || !spec.Camera.Pan {
		t.Fatalf("unexpected camera %+v", spec.Camera)
	}
	if got := spec.Rows.Sprite.Frames; len(got) != 4 || got[0] != 5 || got[3] != 6 {
		t.Fatalf("unexpected frame sequence %v", got)
	}
	if spec.Rows.Rect.Script != "rect.tengo" {
		t.Fatalf("expected rect script, got %q", spec.Rows.Rect.Script)
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadSceneSpec("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "short_hex", in: `c: "#f00"`, want: color.NRGBA{R: 0xff, A: 0xff}},
		{name: "hex", in: `c: "#102030"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{name: "hex_alpha", in: `c: "#10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{name: "name", in: `c: black`, want: color.NRGBA{A: 0xff}},
		{name: "bad_hex", in: `c: "#zz"`, wantErr: true},
		{name: "unknown_name", in: `c: blurple`, wantErr: true},
		{name: "not_scalar", in: `c: [1, 2]`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(tc.in), &out)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := color.NRGBAModel.Convert(out.C.Color).(color.NRGBA)
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var c *YAMLColor
	if c.ColorOr(color.White) != color.White {
		t.Fatalf("nil color should fall back")
	}
	c = &YAMLColor{Color: color.Black}
	if c.ColorOr(color.White) != color.Black {
		t.Fatalf("set color should win")
	}
}
