package parser

import "strings"

// parseAggressorSide maps a wire trade side ("buy"/"sell") to the side of
// the aggressor that initiated the match.
func parseAggressorSide(side string) AggressorSide {
	if strings.EqualFold(side, "buy") {
		return AggressorSideBuyer
	}
	return AggressorSideSeller
}
