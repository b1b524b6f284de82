package lexer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/anish1234567/jiaobenscript/internal/token"
)

// parsedNumber is the outcome of finalizing a numeric lexeme.
type parsedNumber struct {
	Kind  token.Kind
	Int   int64
	Float float64
}

// parseNumber classifies and converts the accumulated digits of a number
// literal per spec.md §4.1: Int when there is no decimal point, no
// negative exponent, and the value fits a signed 64-bit integer;
// Float otherwise.
func parseNumber(text string, hasDot, hasExp, expNegative bool) (parsedNumber, error) {
	if hasDot || (hasExp && expNegative) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return parsedNumber{}, err
		}
		return parsedNumber{Kind: token.FLOAT, Float: f}, nil
	}

	if !hasExp {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return parsedNumber{Kind: token.INT, Int: i}, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return parsedNumber{}, err
		}
		return parsedNumber{Kind: token.FLOAT, Float: f}, nil
	}

	// Non-negative exponent, no dot: compute the exact integer value with
	// math/big so "2e3" emits Int(2000) rather than silently truncating.
	idx := strings.IndexAny(text, "eE")
	mantissaStr := text[:idx]
	expStr := strings.TrimPrefix(text[idx+1:], "+")

	mantissa, mErr := strconv.ParseInt(mantissaStr, 10, 64)
	expVal, eErr := strconv.Atoi(expStr)
	if mErr == nil && eErr == nil {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(expVal)), nil)
		result := new(big.Int).Mul(big.NewInt(mantissa), pow)
		if result.IsInt64() {
			return parsedNumber{Kind: token.INT, Int: result.Int64()}, nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return parsedNumber{}, err
	}
	return parsedNumber{Kind: token.FLOAT, Float: f}, nil
}
