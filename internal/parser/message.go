package parser

import (
	"encoding/json"
	"fmt"
)

// MessageType tags an inbound wire envelope.
type MessageType string

const (
	MessageTypeBookChange       MessageType = "book_change"
	MessageTypeBookSnapshot     MessageType = "book_snapshot"
	MessageTypeTrade            MessageType = "trade"
	MessageTypeBar              MessageType = "bar"
	MessageTypeDerivativeTicker MessageType = "derivative_ticker"
	MessageTypeDisconnect       MessageType = "disconnect"
)

// envelopeTag is the minimal wire shape needed to route a message to its
// typed parser.
type envelopeTag struct {
	Type MessageType `json:"type"`
}

// ParseEnvelope reads just the type tag from a raw wire message and
// dispatches to ParseMessage.
func ParseEnvelope(raw []byte, instrumentID string) (any, error) {
	var tag envelopeTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("parser: decoding message envelope: %w", err)
	}
	return ParseMessage(tag.Type, raw, instrumentID)
}

// ParseMessage routes a tagged wire message to its normalized record.
// derivative_ticker and disconnect messages yield (nil, nil): they carry
// no record (invariant 8). instrumentID, when non-empty, overrides
// resolution from the message's own exchange/symbol fields.
func ParseMessage(msgType MessageType, raw []byte, instrumentID string) (any, error) {
	switch msgType {
	case MessageTypeBookChange:
		var msg BookChangeMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("parser: decoding book_change: %w", err)
		}
		return ParseBookChangeMsg(msg, instrumentID), nil

	case MessageTypeBookSnapshot:
		var msg BookSnapshotMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("parser: decoding book_snapshot: %w", err)
		}
		return ParseBookSnapshotMsg(msg, instrumentID), nil

	case MessageTypeTrade:
		var msg TradeMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("parser: decoding trade: %w", err)
		}
		return ParseTradeMsg(msg, instrumentID), nil

	case MessageTypeBar:
		var msg BarMsg
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("parser: decoding bar: %w", err)
		}
		return ParseBarMsg(msg, instrumentID)

	case MessageTypeDerivativeTicker, MessageTypeDisconnect:
		return nil, nil

	default:
		return nil, fmt.Errorf("parser: unknown message type %q", msgType)
	}
}
