package model

// Trade counterparty labels. Fixed: the human always buys, the algo always
// sells.
const (
	BuyerHuman = "human"
	SellerAlgo = "algo"
)

// OrderBookSnapshot is one top-of-book observation. Time runs in integer
// steps, plus a single synthetic t+0.1 stamp for the post-fill revert.
type OrderBookSnapshot struct {
	Time     float64  `json:"time"`
	BestBid  float64  `json:"best_bid"`
	BestAsk  float64  `json:"best_ask"`
	MidPrice float64  `json:"mid_price"`
	HumanBid *float64 `json:"human_bid,omitempty"`
}

// NewSnapshot records top of book at time t. MidPrice is always recomputed
// from bid/ask here, never carried independently. The human quote is visible
// only while the order is open.
func NewSnapshot(t, bid, ask float64, order HumanOrder) OrderBookSnapshot {
	snap := OrderBookSnapshot{
		Time:     t,
		BestBid:  bid,
		BestAsk:  ask,
		MidPrice: (bid + ask) / 2,
	}
	if order.IsOpen() {
		price := order.Price
		snap.HumanBid = &price
	}
	return snap
}

// TradeRecord is the zero-or-one execution a run can produce. Price is
// always the target price; the mid crossing is only the trigger.
type TradeRecord struct {
	Time   float64 `json:"time"`
	Buyer  string  `json:"buyer"`
	Seller string  `json:"seller"`
	Price  float64 `json:"price"`
	Size   int     `json:"size"`
}
