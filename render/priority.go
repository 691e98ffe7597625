package render

// DrawPriority determines paint order. Lower values paint first, later layers overwrite earlier ones
type DrawPriority int

const (
	PriorityBackground DrawPriority = iota
	PriorityFleet
	PriorityPlayer
	PriorityOverlay
)
