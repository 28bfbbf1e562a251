package testutil

import (
	"time"

	"github.com/akyairhashvil/persimmon/internal/models"
	"github.com/akyairhashvil/persimmon/internal/scene"
	"github.com/akyairhashvil/persimmon/internal/util"
	"github.com/google/uuid"
)

// NodeBuilder provides fluent API for creating test scene parts.
type NodeBuilder struct {
	node scene.Node
}

func NewNode() *NodeBuilder {
	return &NodeBuilder{
		node: scene.Node{
			Name: "top",
			Points: []scene.Point{
				{Pos: scene.V(0, 0.2, 0), Normal: scene.V(0, 1, 0)},
			},
		},
	}
}

func (b *NodeBuilder) WithName(name string) *NodeBuilder {
	b.node.Name = name
	return b
}

func (b *NodeBuilder) WithPosition(p scene.Vec3) *NodeBuilder {
	b.node.Position = p
	return b
}

func (b *NodeBuilder) WithRotation(r scene.Vec3) *NodeBuilder {
	b.node.Rotation = r
	return b
}

func (b *NodeBuilder) WithPoints(points ...scene.Point) *NodeBuilder {
	b.node.Points = points
	return b
}

func (b *NodeBuilder) Build() *scene.Node {
	n := b.node
	n.Points = append([]scene.Point(nil), b.node.Points...)
	return &n
}

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:        uuid.New(),
			Minutes:   5,
			Phase:     models.PhaseOpening,
			Remaining: util.Ptr(300),
			StartedAt: time.Now(),
		},
	}
}

func (b *SessionBuilder) WithMinutes(minutes int) *SessionBuilder {
	b.session.Minutes = minutes
	b.session.Remaining = util.Ptr(minutes * 60)
	return b
}

func (b *SessionBuilder) WithPhase(p models.Phase) *SessionBuilder {
	b.session.Phase = p
	if p == models.PhaseIdle {
		b.session.Remaining = nil
	}
	return b
}

func (b *SessionBuilder) WithRemaining(seconds int) *SessionBuilder {
	b.session.Remaining = util.Ptr(seconds)
	return b
}

func (b *SessionBuilder) WithStartedAt(at time.Time) *SessionBuilder {
	b.session.StartedAt = at
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
