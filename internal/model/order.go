package model

// HumanOrder is the single resting limit buy in the book. Its price never
// changes after creation; the only mutation is the one-time fill.
type HumanOrder struct {
	Price  float64
	Size   int
	Filled int
}

// NewHumanOrder creates an open limit buy of size 1 at the given price.
func NewHumanOrder(price float64) HumanOrder {
	return HumanOrder{Price: price, Size: 1, Filled: 0}
}

// IsOpen reports whether any quantity remains unfilled.
func (o HumanOrder) IsOpen() bool {
	return o.Filled < o.Size
}

// Fill marks the order fully filled. There are no partial fills; Filled
// jumps from 0 to Size and never decreases.
func (o *HumanOrder) Fill() {
	o.Filled = o.Size
}
