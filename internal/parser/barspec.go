package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var barNamePattern = regexp.MustCompile(`^([a-z]+)_bar_(\d+)(ms|s|m|h|D)$`)

var barPriceTypes = map[string]string{
	"trade": "LAST",
	"mid":   "MID",
	"bid":   "BID",
	"ask":   "ASK",
}

var barUnits = map[string]string{
	"ms": "MILLISECOND",
	"s":  "SECOND",
	"m":  "MINUTE",
	"h":  "HOUR",
	"D":  "DAY",
}

// parseBarSpec parses the aggregation parameters embedded in a bar's wire
// name, e.g. "trade_bar_10000ms" -> step=10000, unit=MILLISECOND,
// price_type=LAST.
func parseBarSpec(name string) (BarSpec, error) {
	m := barNamePattern.FindStringSubmatch(name)
	if m == nil {
		return BarSpec{}, fmt.Errorf("parser: malformed bar name %q", name)
	}

	priceType, ok := barPriceTypes[m[1]]
	if !ok {
		return BarSpec{}, fmt.Errorf("parser: unknown bar price type %q in name %q", m[1], name)
	}
	unit, ok := barUnits[m[3]]
	if !ok {
		return BarSpec{}, fmt.Errorf("parser: unknown bar unit %q in name %q", m[3], name)
	}
	step, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return BarSpec{}, fmt.Errorf("parser: invalid bar step in name %q: %w", name, err)
	}

	return BarSpec{Step: step, Unit: unit, PriceType: priceType}, nil
}

// String renders a bar type as "<instrument>-<step>-<unit>-<priceType>-<source>".
func (bt BarType) String() string {
	var b strings.Builder
	b.WriteString(bt.InstrumentID)
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(bt.Spec.Step, 10))
	b.WriteByte('-')
	b.WriteString(bt.Spec.Unit)
	b.WriteByte('-')
	b.WriteString(bt.Spec.PriceType)
	b.WriteByte('-')
	b.WriteString(bt.AggregationSource.String())
	return b.String()
}
