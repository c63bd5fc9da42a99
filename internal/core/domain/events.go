package domain

import "time"

type InteractionKind string

const (
	InteractionLike    InteractionKind = "like"
	InteractionUnlike  InteractionKind = "unlike"
	InteractionCartAdd InteractionKind = "cart_add"
)

// An InteractionEvent is a telemetry record of a storefront user action.
// Emission is best-effort and never blocks the action itself.
type InteractionEvent struct {
	Kind        InteractionKind
	ProductID   string
	ProductName string
	Category    string
	Likes       int
	OccurredAt  time.Time
}
