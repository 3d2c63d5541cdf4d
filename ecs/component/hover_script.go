package component

// HoverScript binds a tengo script (path under prefabs/scripts) to an
// entity's hover triggers.
type HoverScript struct {
	Path  string
	Bound bool
}

var HoverScriptComponent = NewComponent[HoverScript]()
