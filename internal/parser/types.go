// Package parser converts inbound market-data wire messages (order-book
// deltas, snapshots, trades, bars) into normalized domain records. The
// functions here are pure: given a message and an instrument ID they return
// a record with no side effects and no shared state with the
// cache-persistence engine. Prices and sizes are carried as float64 rather
// than as fixed-point values scaled by a price/size precision, since Go has
// no equivalent of the original's precision-aware Price/Quantity type;
// callers that need fixed-point rounding apply it themselves.
package parser

// OrderSide is the side of a book order.
type OrderSide int

const (
	OrderSideBuy OrderSide = iota
	OrderSideSell
)

func (s OrderSide) String() string {
	if s == OrderSideBuy {
		return "BUY"
	}
	return "SELL"
}

// BookAction identifies what a single order-book delta does to the book.
type BookAction int

const (
	BookActionAdd BookAction = iota
	BookActionUpdate
	BookActionDelete
)

func (a BookAction) String() string {
	switch a {
	case BookActionAdd:
		return "Add"
	case BookActionDelete:
		return "Delete"
	default:
		return "Update"
	}
}

// AggressorSide is the side of a trade that initiated the match.
type AggressorSide int

const (
	AggressorSideBuyer AggressorSide = iota
	AggressorSideSeller
)

func (a AggressorSide) String() string {
	if a == AggressorSideBuyer {
		return "Buyer"
	}
	return "Seller"
}

// BookLevel is one price/amount pair on the wire, bid or ask depending on
// which slice of a book message it came from.
type BookLevel struct {
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

// BookChangeMsg is an incremental order-book update.
type BookChangeMsg struct {
	Exchange       string      `json:"exchange"`
	Symbol         string      `json:"symbol"`
	IsSnapshot     bool        `json:"is_snapshot"`
	Bids           []BookLevel `json:"bids"`
	Asks           []BookLevel `json:"asks"`
	Timestamp      int64       `json:"timestamp"`       // unix nanoseconds
	LocalTimestamp int64       `json:"local_timestamp"` // unix nanoseconds
}

// BookSnapshotMsg is a full order-book replacement view. It carries the
// same shape as BookChangeMsg; is_snapshot is forced true regardless of
// what the wire sends, matching the upstream feed's semantics for this
// message type.
type BookSnapshotMsg struct {
	Exchange       string      `json:"exchange"`
	Symbol         string      `json:"symbol"`
	Depth          int         `json:"depth,omitempty"`
	Bids           []BookLevel `json:"bids"`
	Asks           []BookLevel `json:"asks"`
	Timestamp      int64       `json:"timestamp"`
	LocalTimestamp int64       `json:"local_timestamp"`
}

// TradeMsg is a single executed trade.
type TradeMsg struct {
	Exchange       string  `json:"exchange"`
	Symbol         string  `json:"symbol"`
	Price          float64 `json:"price"`
	Amount         float64 `json:"amount"`
	Side           string  `json:"side"`
	ID             *string `json:"id,omitempty"`
	Timestamp      int64   `json:"timestamp"`
	LocalTimestamp int64   `json:"local_timestamp"`
}

// BarMsg is one OHLCV bar. Name carries the bar-spec, e.g. "trade_bar_10000ms".
type BarMsg struct {
	Exchange       string  `json:"exchange"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Open           float64 `json:"open"`
	High           float64 `json:"high"`
	Low            float64 `json:"low"`
	Close          float64 `json:"close"`
	Volume         float64 `json:"volume"`
	Timestamp      int64   `json:"timestamp"`
	LocalTimestamp int64   `json:"local_timestamp"`
}

// DerivativeTickerMsg and DisconnectMsg carry fields this parser never
// needs to read; both always yield no record (invariant 8).
type DerivativeTickerMsg struct {
	Exchange string `json:"exchange"`
	Symbol   string `json:"symbol"`
}

type DisconnectMsg struct {
	Exchange string `json:"exchange"`
}

// BookOrder is one side/price/size tuple underlying a delta.
type BookOrder struct {
	Side    OrderSide
	Price   float64
	Size    float64
	OrderID uint64 // always 0: not applicable to L2 data
}

// OrderBookDelta is one normalized change to an instrument's book.
type OrderBookDelta struct {
	InstrumentID string
	Action       BookAction
	Order        BookOrder
	Flags        uint8
	Sequence     uint64
	TsEvent      uint64
	TsInit       uint64
}

// OrderBookDeltas is a batch of deltas parsed from a single wire message.
// Flags and the timestamps are the aggregate of the batch: Flags is the
// OR of every delta's flags, and TsEvent/TsInit mirror the message pair.
type OrderBookDeltas struct {
	InstrumentID string
	Deltas       []OrderBookDelta
	Flags        uint8
	Sequence     uint64
	TsEvent      uint64
	TsInit       uint64
}

// TradeTick is a normalized trade.
type TradeTick struct {
	InstrumentID  string
	Price         float64
	Size          float64
	AggressorSide AggressorSide
	TradeID       string
	TsEvent       uint64
	TsInit        uint64
}

// BarSpec is the aggregation parameters embedded in a bar's wire name.
type BarSpec struct {
	Step      uint64
	Unit      string // e.g. "MILLISECOND", "SECOND", "MINUTE", "HOUR", "DAY"
	PriceType string // e.g. "LAST", "MID", "BID", "ASK"
}

// AggregationSource distinguishes bars built internally from bars received
// already-aggregated from the venue. Wire bars are always External.
type AggregationSource int

const (
	AggregationSourceExternal AggregationSource = iota
	AggregationSourceInternal
)

func (s AggregationSource) String() string {
	if s == AggregationSourceInternal {
		return "INTERNAL"
	}
	return "EXTERNAL"
}

// BarType identifies an instrument/spec/source triple.
type BarType struct {
	InstrumentID      string
	Spec              BarSpec
	AggregationSource AggregationSource
}

// Bar is one normalized OHLCV record.
type Bar struct {
	BarType BarType
	Open    float64
	High    float64
	Low     float64
	Close   float64
	Volume  float64
	TsEvent uint64
	TsInit  uint64
}
