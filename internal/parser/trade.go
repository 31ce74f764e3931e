package parser

import "github.com/google/uuid"

// ParseTradeMsg normalizes a trade message. A trade id is generated (UUID4)
// when the wire message carries none.
func ParseTradeMsg(msg TradeMsg, instrumentID string) TradeTick {
	if instrumentID == "" {
		instrumentID = ParseInstrumentID(msg.Exchange, msg.Symbol)
	}

	tradeID := uuid.NewString()
	if msg.ID != nil && *msg.ID != "" {
		tradeID = *msg.ID
	}

	return TradeTick{
		InstrumentID:  instrumentID,
		Price:         msg.Price,
		Size:          msg.Amount,
		AggressorSide: parseAggressorSide(msg.Side),
		TradeID:       tradeID,
		TsEvent:       uint64(msg.Timestamp),
		TsInit:        uint64(msg.LocalTimestamp),
	}
}
