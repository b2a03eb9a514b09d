package mpesa

import (
	"errors"
	"strings"
)

var ErrInvalidPhone = errors.New("invalid Kenyan phone number")

// NormalizePhone converts the formats donors actually type into the
// 254-prefixed MSISDN the STK push API wants. Accepted inputs:
//
//	0712345678     local format with leading zero
//	254712345678   already international
//	712345678      bare subscriber number
//
// Spaces, dashes and a leading + are stripped first. Subscriber numbers
// must start with 7 or 1 (Safaricom and Airtel ranges).
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '+', '(', ')':
			return -1
		}
		return r
	}, raw)

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}

	var subscriber string
	switch {
	case len(cleaned) == 10 && cleaned[0] == '0':
		subscriber = cleaned[1:]
	case len(cleaned) == 12 && strings.HasPrefix(cleaned, "254"):
		subscriber = cleaned[3:]
	case len(cleaned) == 9:
		subscriber = cleaned
	default:
		return "", ErrInvalidPhone
	}

	if subscriber[0] != '7' && subscriber[0] != '1' {
		return "", ErrInvalidPhone
	}
	return "254" + subscriber, nil
}
