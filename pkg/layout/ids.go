package layout

import "github.com/google/uuid"

// ItemID is an opaque handle for a registered item.
type ItemID uuid.UUID

// ContainerID is an opaque handle for a registered container.
type ContainerID uuid.UUID

// ElementID identifies the visual element an item is attached to. Items
// sharing an element are co-located: they never snap to or occlude each
// other and always share a priority.
type ElementID uuid.UUID

// NewElementID returns a fresh element identity.
func NewElementID() ElementID { return ElementID(uuid.New()) }

func (id ItemID) String() string      { return uuid.UUID(id).String() }
func (id ContainerID) String() string { return uuid.UUID(id).String() }
func (id ElementID) String() string   { return uuid.UUID(id).String() }

// IsZero reports whether id is the zero handle returned by failed lookups.
func (id ItemID) IsZero() bool { return id == ItemID{} }

// IsZero reports whether id is the zero handle.
func (id ContainerID) IsZero() bool { return id == ContainerID{} }

// IsZero reports whether id is the zero element.
func (id ElementID) IsZero() bool { return id == ElementID{} }
