package parser

// ParseBookChangeMsg normalizes an incremental book-change message into a
// deltas batch. If instrumentID is empty, it is resolved from the
// message's exchange/symbol.
func ParseBookChangeMsg(msg BookChangeMsg, instrumentID string) OrderBookDeltas {
	if instrumentID == "" {
		instrumentID = ParseInstrumentID(msg.Exchange, msg.Symbol)
	}
	return parseBookMsg(msg.Bids, msg.Asks, msg.IsSnapshot, instrumentID, msg.Timestamp, msg.LocalTimestamp)
}

// ParseBookSnapshotMsg normalizes a full book-snapshot message into a
// deltas batch. Snapshot messages are always treated as is_snapshot=true
// regardless of the wire payload.
func ParseBookSnapshotMsg(msg BookSnapshotMsg, instrumentID string) OrderBookDeltas {
	if instrumentID == "" {
		instrumentID = ParseInstrumentID(msg.Exchange, msg.Symbol)
	}
	return parseBookMsg(msg.Bids, msg.Asks, true, instrumentID, msg.Timestamp, msg.LocalTimestamp)
}

func parseBookMsg(bids, asks []BookLevel, isSnapshot bool, instrumentID string, timestamp, localTimestamp int64) OrderBookDeltas {
	tsEvent := uint64(timestamp)
	tsInit := uint64(localTimestamp)

	deltas := make([]OrderBookDelta, 0, len(bids)+len(asks))
	for _, level := range bids {
		deltas = append(deltas, parseBookLevel(instrumentID, OrderSideBuy, level, isSnapshot, tsEvent, tsInit))
	}
	for _, level := range asks {
		deltas = append(deltas, parseBookLevel(instrumentID, OrderSideSell, level, isSnapshot, tsEvent, tsInit))
	}

	if n := len(deltas); n > 0 {
		deltas[n-1].Flags |= FlagLast
	}

	batchFlags := uint8(0)
	if isSnapshot {
		batchFlags |= FlagSnapshot
	}
	if len(deltas) > 0 {
		batchFlags |= FlagLast
	}

	return OrderBookDeltas{
		InstrumentID: instrumentID,
		Deltas:       deltas,
		Flags:        batchFlags,
		Sequence:     0,
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}
}

func parseBookLevel(instrumentID string, side OrderSide, level BookLevel, isSnapshot bool, tsEvent, tsInit uint64) OrderBookDelta {
	action := parseBookAction(isSnapshot, level.Amount)

	var flags uint8
	if isSnapshot {
		flags = FlagSnapshot
	}

	return OrderBookDelta{
		InstrumentID: instrumentID,
		Action:       action,
		Order: BookOrder{
			Side:    side,
			Price:   level.Price,
			Size:    level.Amount,
			OrderID: 0,
		},
		Flags:    flags,
		Sequence: 0,
		TsEvent:  tsEvent,
		TsInit:   tsInit,
	}
}
