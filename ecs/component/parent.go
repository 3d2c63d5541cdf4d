package component

// Parent links an entity into the scene tree. The zero Entity means root.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
