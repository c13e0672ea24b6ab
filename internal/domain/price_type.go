package domain

import (
	"fmt"
	"strings"
)

// PriceType selects which side of a quote is used, or their midpoint.
type PriceType int

const (
	PriceTypeBid PriceType = iota + 1
	PriceTypeAsk
	PriceTypeMid
)

func (t PriceType) String() string {
	switch t {
	case PriceTypeBid:
		return "BID"
	case PriceTypeAsk:
		return "ASK"
	case PriceTypeMid:
		return "MID"
	default:
		return fmt.Sprintf("PriceType(%d)", int(t))
	}
}

func ParsePriceType(s string) (PriceType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BID":
		return PriceTypeBid, nil
	case "ASK":
		return PriceTypeAsk, nil
	case "MID":
		return PriceTypeMid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPriceType, s)
	}
}
