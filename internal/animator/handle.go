package animator

import (
	"errors"

	"github.com/akyairhashvil/persimmon/internal/scene"
)

var (
	// ErrAlreadyBound is returned when a handle is bound a second time.
	ErrAlreadyBound = errors.New("part handle already bound")
	// ErrNilPart is returned when Bind is given no part.
	ErrNilPart = errors.New("cannot bind a nil part")
)

// Handle is a non-owning reference to the part being animated. It is empty
// until the asset finishes loading and is written exactly once.
type Handle struct {
	node *scene.Node
	rest scene.Vec3
}

// Bind points the handle at n and records n's rest position.
func (h *Handle) Bind(n *scene.Node) error {
	if n == nil {
		return ErrNilPart
	}
	if h.node != nil {
		return ErrAlreadyBound
	}
	h.node = n
	h.rest = n.Position
	return nil
}

// Node returns the bound part.
func (h *Handle) Node() (*scene.Node, bool) {
	if h == nil || h.node == nil {
		return nil, false
	}
	return h.node, true
}

// Rest is the part's position when it was bound.
func (h *Handle) Rest() scene.Vec3 {
	if h == nil {
		return scene.Vec3{}
	}
	return h.rest
}
