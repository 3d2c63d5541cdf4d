package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hover/ecs/system"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes the sample scene: a camera, a block of repeated rows
// and any number of free entities.
type SceneSpec struct {
	Camera   CameraSpec   `yaml:"camera"`
	Rows     RowsSpec     `yaml:"rows"`
	Entities []EntitySpec `yaml:"entities"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}

type CameraSpec struct {
	Transform TransformSpec `yaml:"transform"`
	// Width and Height default to the game size when zero.
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	ScaleX  float64 `yaml:"scale_x"`
	ScaleY  float64 `yaml:"scale_y"`
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`
	Pan     bool    `yaml:"pan"`
}

// RowsSpec repeats one sprite, rect and label per row, Spacing apart.
// "{n}" in titles and texts is replaced with the 1-based row number.
type RowsSpec struct {
	Count   int           `yaml:"count"`
	Spacing float64       `yaml:"spacing"`
	Sprite  SpriteRowSpec `yaml:"sprite"`
	Rect    RectRowSpec   `yaml:"rect"`
	Label   LabelRowSpec  `yaml:"label"`
}

type SpriteRowSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Size      SizeSpec      `yaml:"size"`
	Frames    []int         `yaml:"frames"`
	Interval  int           `yaml:"interval"`
	Hover     HoverSpec     `yaml:"hover"`
}

type RectRowSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Size      SizeSpec      `yaml:"size"`
	Color     *YAMLColor    `yaml:"color"`
	Script    string        `yaml:"script"`
	Hover     HoverSpec     `yaml:"hover"`
}

type LabelRowSpec struct {
	Transform  TransformSpec `yaml:"transform"`
	Text       string        `yaml:"text"`
	FontSize   float64       `yaml:"font_size"`
	Color      *YAMLColor    `yaml:"color"`
	HoverText  string        `yaml:"hover_text"`
	HoverColor *YAMLColor    `yaml:"hover_color"`
	Hover      HoverSpec     `yaml:"hover"`
}

// EntitySpec is a free-standing entity. Omitted sections add no component.
type EntitySpec struct {
	Name        string           `yaml:"name"`
	Parent      string           `yaml:"parent"`
	Transform   TransformSpec    `yaml:"transform"`
	Size        *SizeSpec        `yaml:"size"`
	RenderLayer *RenderLayerSpec `yaml:"render_layer"`
	Fill        *YAMLColor       `yaml:"fill"`
	Label       *LabelSpec       `yaml:"label"`
	Hover       *HoverSpec       `yaml:"hover"`
	Script      string           `yaml:"script"`
	Touchable   bool             `yaml:"touchable"`
	Hidden      bool             `yaml:"hidden"`
}

type HoverSpec struct {
	Cursor string `yaml:"cursor"`
	Title  string `yaml:"title"`
}

type LabelSpec struct {
	Text     string     `yaml:"text"`
	FontSize float64    `yaml:"font_size"`
	Color    *YAMLColor `yaml:"color"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
	AnchorX  float64 `yaml:"anchor_x"`
	AnchorY  float64 `yaml:"anchor_y"`
}

type SizeSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or a CSS color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	clr, err := system.ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// ColorOr returns c's color, or def when c is unset.
func (c *YAMLColor) ColorOr(def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}
