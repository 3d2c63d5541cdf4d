package component

// Touchable marks entities considered by point queries.
type Touchable struct{}

var TouchableComponent = NewComponent[Touchable]()

// Hidden entities are neither drawn nor hit-tested.
type Hidden struct{}

var HiddenComponent = NewComponent[Hidden]()
