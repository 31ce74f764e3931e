package cache

// Reserved collection names (spec.md §6).
const (
	CollGeneral     = "general"
	CollCurrencies  = "currencies"
	CollInstruments = "instruments"
	CollSynthetics  = "synthetics"
	CollAccounts    = "accounts"
	CollOrders      = "orders"
	CollPositions   = "positions"
	CollActors      = "actors"
	CollStrategies  = "strategies"
	CollSnapshots   = "snapshots"
	CollHealth      = "health"
	CollIndex       = "index"
)

// Reserved index tails (spec.md §6). These are the bare index names; a
// tail observed on the wire may carry a ":<suffix>" continuation (e.g.
// "orders_open:S-1" for a per-strategy open-orders set) which dispatch
// strips before comparing against this list.
const (
	IndexOrderIDs        = "order_ids"
	IndexOrderPosition   = "order_position"
	IndexOrderClient     = "order_client"
	IndexOrders          = "orders"
	IndexOrdersOpen      = "orders_open"
	IndexOrdersClosed    = "orders_closed"
	IndexOrdersEmulated  = "orders_emulated"
	IndexOrdersInflight  = "orders_inflight"
	IndexPositions       = "positions"
	IndexPositionsOpen   = "positions_open"
	IndexPositionsClosed = "positions_closed"
)

// scalarCollections hold a single overwritten byte blob (SET on insert).
var scalarCollections = map[string]bool{
	CollGeneral:     true,
	CollCurrencies:  true,
	CollInstruments: true,
	CollSynthetics:  true,
	CollActors:      true,
	CollStrategies:  true,
	CollHealth:      true,
}

// listCollections hold an append-only list of event blobs (RPUSH on insert,
// RPUSHX on update).
var listCollections = map[string]bool{
	CollAccounts:  true,
	CollOrders:    true,
	CollPositions: true,
}

// deletableScalarCollections accept Delete (DEL).
var deletableScalarCollections = map[string]bool{
	CollActors:     true,
	CollStrategies: true,
}

// transitionIndexTails are the only set-indices that accept Delete (SREM).
var transitionIndexTails = map[string]bool{
	IndexOrdersOpen:      true,
	IndexOrdersClosed:    true,
	IndexOrdersEmulated:  true,
	IndexOrdersInflight:  true,
	IndexPositionsOpen:   true,
	IndexPositionsClosed: true,
}

// hashIndexTails dispatch to HSET on insert and HGETALL on read.
var hashIndexTails = map[string]bool{
	IndexOrderPosition: true,
	IndexOrderClient:   true,
}

// domainLoadCollections are the six collections the bulk loader fans out
// over (spec.md §4.6).
var domainLoadCollections = []string{
	CollCurrencies,
	CollInstruments,
	CollSynthetics,
	CollAccounts,
	CollOrders,
	CollPositions,
}

// CacheMap is the aggregated result of LoadAll, one map per domain
// collection keyed by the domain identifier extracted from the key tail.
type CacheMap struct {
	Currencies  map[string][]byte
	Instruments map[string][]byte
	Synthetics  map[string][]byte
	Accounts    map[string][][]byte
	Orders      map[string][][]byte
	Positions   map[string][][]byte
}

func newCacheMap() *CacheMap {
	return &CacheMap{
		Currencies:  make(map[string][]byte),
		Instruments: make(map[string][]byte),
		Synthetics:  make(map[string][]byte),
		Accounts:    make(map[string][][]byte),
		Orders:      make(map[string][][]byte),
		Positions:   make(map[string][][]byte),
	}
}
