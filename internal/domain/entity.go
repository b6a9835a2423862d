package domain

// Entity holds the identity and lifecycle state shared by every record the
// bank tracks. It is embedded by value in Account and Loan; ids are
// caller-supplied and unique only within each entity's own namespace.
type Entity struct {
	id     int64
	name   string
	active bool
}

// NewEntity creates an active entity with the given id and display name.
func NewEntity(id int64, name string) Entity {
	return Entity{id: id, name: name, active: true}
}

// ID returns the entity's identifier.
func (e *Entity) ID() int64 {
	return e.id
}

// Name returns the entity's display name.
func (e *Entity) Name() string {
	return e.name
}

// Active reports whether the entity still accepts settling operations.
func (e *Entity) Active() bool {
	return e.active
}

// Deactivate marks the entity inactive. There is no way back.
func (e *Entity) Deactivate() {
	e.active = false
}
