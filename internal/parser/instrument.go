package parser

import "strings"

// ParseInstrumentID resolves the normalized instrument identifier from a
// wire exchange/symbol pair: "<symbol>.<EXCHANGE>", exchange upper-cased.
func ParseInstrumentID(exchange, symbol string) string {
	return symbol + "." + strings.ToUpper(exchange)
}
