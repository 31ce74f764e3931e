package parser

// ParseBarMsg normalizes a bar message, parsing its aggregation spec from
// the wire name field and tagging the source as External (bars arrive
// already aggregated by the venue/feed, never built internally by this
// package).
func ParseBarMsg(msg BarMsg, instrumentID string) (Bar, error) {
	if instrumentID == "" {
		instrumentID = ParseInstrumentID(msg.Exchange, msg.Symbol)
	}

	spec, err := parseBarSpec(msg.Name)
	if err != nil {
		return Bar{}, err
	}

	barType := BarType{
		InstrumentID:      instrumentID,
		Spec:              spec,
		AggregationSource: AggregationSourceExternal,
	}

	return Bar{
		BarType: barType,
		Open:    msg.Open,
		High:    msg.High,
		Low:     msg.Low,
		Close:   msg.Close,
		Volume:  msg.Volume,
		TsEvent: uint64(msg.Timestamp),
		TsInit:  uint64(msg.LocalTimestamp),
	}, nil
}
