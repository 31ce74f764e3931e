package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// entityResult is one loaded entity (scalar or list) fanned in from a
// per-collection loader goroutine. A non-nil err means the entity's own
// read failed (transport error); it is logged and dropped, never
// propagated, matching spec.md's Design Notes on bulk-load identifier
// extraction.
type entityResult struct {
	collection string
	identifier string
	scalar     []byte
	list       [][]byte
	err        error
}

// LoadAll runs the bulk loader: SCAN MATCH each domain collection, extract
// the entity identifier from the key tail, load every entity concurrently,
// and reduce the results into a CacheMap. A malformed key or a failed
// per-entity read is logged and dropped rather than failing the whole
// load. A collection-level SCAN failure is different: since the loader
// never even enumerated that collection's keys, it is collected and
// returned as a single aggregated error once every collection has finished,
// matching spec.md §4.6 ("A failure in any one is propagated as a single
// aggregated error"). go-redis clients pool their own connections and are
// safe for concurrent use, so every goroutine shares e.readStore directly
// rather than dialing a second connection.
func (e *Engine) LoadAll(ctx context.Context) (*CacheMap, error) {
	results := make(chan entityResult, 256)
	scanErrs := make(chan error, len(domainLoadCollections))
	var wg sync.WaitGroup

	for _, collection := range domainLoadCollections {
		collection := collection
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := e.loadCollection(ctx, collection, results); err != nil {
				scanErrs <- fmt.Errorf("scanning %q: %w", collection, err)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
		close(scanErrs)
	}()

	out := newCacheMap()
	for res := range results {
		if res.err != nil {
			e.logger.Error("dropping entity during load", "error", res.err, "collection", res.collection, "identifier", res.identifier)
			e.metrics.loadFailures.Inc()
			continue
		}
		e.reduceInto(out, res)
	}

	var errs []error
	for err := range scanErrs {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return out, errors.Join(errs...)
	}
	return out, nil
}

func (e *Engine) loadCollection(ctx context.Context, collection string, results chan<- entityResult) error {
	pattern := e.traderKey + string(keyDelimiter) + collection + "*"
	keys, err := scanKeys(ctx, e.readStore, pattern)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, key := range keys {
		key := key
		identifier := identifierOf(key)
		if identifier == "" {
			e.logger.Error("dropping malformed key during load", "key", key, "collection", collection)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			e.loadEntity(ctx, collection, identifier, key, results)
		}()
	}
	wg.Wait()
	return nil
}

func (e *Engine) loadEntity(ctx context.Context, collection, identifier, fullKey string, results chan<- entityResult) {
	if listCollections[collection] {
		values, err := readList(ctx, e.readStore, fullKey)
		if err == nil && len(values) == 0 {
			err = fmt.Errorf("key %q not found", fullKey)
		}
		results <- entityResult{collection: collection, identifier: identifier, list: values, err: err}
		return
	}
	value, err := readString(ctx, e.readStore, fullKey)
	if err == nil && len(value) == 0 {
		err = fmt.Errorf("key %q not found", fullKey)
	}
	var scalar []byte
	if len(value) > 0 {
		scalar = value[0]
	}
	results <- entityResult{collection: collection, identifier: identifier, scalar: scalar, err: err}
}

// identifierOf extracts the entity identifier from the final ':'-separated
// segment of a fully-qualified key, e.g. "trader-1:orders:O-123" -> "O-123".
func identifierOf(fullKey string) string {
	idx := strings.LastIndexByte(fullKey, keyDelimiter)
	if idx < 0 || idx == len(fullKey)-1 {
		return ""
	}
	return fullKey[idx+1:]
}

func (e *Engine) reduceInto(out *CacheMap, res entityResult) {
	switch res.collection {
	case CollCurrencies:
		out.Currencies[res.identifier] = res.scalar
	case CollInstruments:
		out.Instruments[res.identifier] = res.scalar
	case CollSynthetics:
		out.Synthetics[res.identifier] = res.scalar
	case CollAccounts:
		out.Accounts[res.identifier] = res.list
	case CollOrders:
		out.Orders[res.identifier] = res.list
	case CollPositions:
		out.Positions[res.identifier] = res.list
	}
}

// The following loaders cover the market-data and snapshot surfaces named in
// spec.md's Non-goals. This adapter stores order/account/position event
// logs and domain scalars only; it never became a venue-side order-book or
// bar cache, so every one of these returns ErrUnsupported rather than a
// half-built read path.

// LoadOrderBook is not supported: this adapter persists order and position
// event logs, never reconstructed venue order books.
func (e *Engine) LoadOrderBook(context.Context, string) error { return ErrUnsupported }

// LoadQuoteTicks is not supported: no market-data tick history is mirrored
// by this adapter.
func (e *Engine) LoadQuoteTicks(context.Context, string) error { return ErrUnsupported }

// LoadTradeTicks is not supported.
func (e *Engine) LoadTradeTicks(context.Context, string) error { return ErrUnsupported }

// LoadBars is not supported.
func (e *Engine) LoadBars(context.Context, string) error { return ErrUnsupported }

// LoadSignals is not supported.
func (e *Engine) LoadSignals(context.Context, string) error { return ErrUnsupported }

// LoadCustomData is not supported.
func (e *Engine) LoadCustomData(context.Context, string) error { return ErrUnsupported }

// LoadOrderSnapshot is not supported: the snapshots collection is
// write-only in this adapter (see dispatchInsert).
func (e *Engine) LoadOrderSnapshot(context.Context, string) error { return ErrUnsupported }

// LoadPositionSnapshot is not supported.
func (e *Engine) LoadPositionSnapshot(context.Context, string) error { return ErrUnsupported }

// LoadIndexOrderPosition is not supported: the order_position hash index is
// read through Read, not through a dedicated typed loader.
func (e *Engine) LoadIndexOrderPosition(context.Context) error { return ErrUnsupported }

// LoadIndexOrderClient is not supported, for the same reason as
// LoadIndexOrderPosition.
func (e *Engine) LoadIndexOrderClient(context.Context) error { return ErrUnsupported }

// AddOrderBook, AddQuote, AddTrade, AddBar, AddSignal, and AddCustomData are
// not supported: this adapter never persists market data.
func (e *Engine) AddOrderBook(context.Context, []byte) error  { return ErrUnsupported }
func (e *Engine) AddQuote(context.Context, []byte) error      { return ErrUnsupported }
func (e *Engine) AddTrade(context.Context, []byte) error      { return ErrUnsupported }
func (e *Engine) AddBar(context.Context, []byte) error        { return ErrUnsupported }
func (e *Engine) AddSignal(context.Context, []byte) error     { return ErrUnsupported }
func (e *Engine) AddCustomData(context.Context, []byte) error { return ErrUnsupported }
