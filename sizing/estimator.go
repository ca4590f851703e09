/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sizing

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/storemeter/storagemodels"
)

const (
	// containerOverhead is charged once per List or Map regardless of contents.
	containerOverhead = 3
	booleanCost       = 1
	// maxExponent bounds the exponent of number text so digit counts fit in an int.
	maxExponent = 1 << 30
)

// Estimator computes the approximate stored size of a record. The zero value
// is ready to use and charges nothing for Null payloads.
type Estimator struct {
	nullCost int64
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithStoreNullAccounting charges 1 byte for a Null payload, as DynamoDB does
// for NULL attributes.
func WithStoreNullAccounting() Option {
	return func(e *Estimator) {
		e.nullCost = 1
	}
}

// NewEstimator returns an Estimator with the given options applied.
func NewEstimator(opts ...Option) Estimator {
	var e Estimator
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Estimate returns the size in bytes of rec using the default Estimator.
func Estimate(rec storagemodels.Record) int64 {
	return Estimator{}.Estimate(rec)
}

// EstimateItem sizes a raw DynamoDB item using the default Estimator.
func EstimateItem(item map[string]types.AttributeValue) int64 {
	return Estimate(storagemodels.FromItem(item))
}

// Estimate sums, for every attribute, the UTF-8 length of its name plus the
// cost of its value. The root record carries no container overhead.
func (e Estimator) Estimate(rec storagemodels.Record) int64 {
	return e.attributes(rec)
}

func (e Estimator) attributes(attrs map[string]storagemodels.Value) int64 {
	var bytes int64
	for name, v := range attrs {
		bytes += int64(len(name))
		bytes += e.ValueSize(v)
	}
	return bytes
}

// ValueSize returns the payload cost of a single value, excluding any attribute name.
func (e Estimator) ValueSize(v storagemodels.Value) int64 {
	switch v.Kind() {
	case storagemodels.KindString:
		s, _ := v.Text()
		return int64(len(s))
	case storagemodels.KindNumber:
		n, _ := v.Text()
		return NumberSize(n)
	case storagemodels.KindBoolean:
		return booleanCost
	case storagemodels.KindBinary:
		b, _ := v.Bytes()
		return int64(len(b))
	case storagemodels.KindList:
		items, _ := v.Elements()
		bytes := int64(containerOverhead)
		for _, item := range items {
			bytes += e.ValueSize(item)
		}
		return bytes
	case storagemodels.KindMap:
		attrs, _ := v.Attributes()
		return containerOverhead + e.attributes(attrs)
	case storagemodels.KindNull:
		return e.nullCost
	}
	return 0
}

// NumberSize returns the stored cost of a number given as decimal text:
// one byte per two significant digits, rounded up, plus one.
func NumberSize(text string) int64 {
	d := SignificantDigits(text)
	return int64((d+1)/2) + 1
}

// SignificantDigits counts the digits of the number's plain decimal form after
// leading zeros and trailing fractional zeros are dropped. "100" has 3,
// "0.050" has 1, "1e3" has 4. Zero counts as one digit.
//
// The count is derived from the mantissa and exponent text, so it costs time
// linear in len(text) however large the exponent is.
func SignificantDigits(text string) int {
	mantissa, exponent := splitExponent(strings.TrimSpace(text))
	mantissa = strings.TrimLeft(mantissa, "+-")

	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	intPart, fracPart = onlyDigits(intPart), onlyDigits(fracPart)
	digits := intPart + fracPart

	// point is where the decimal point falls within digits once the exponent
	// is applied; it may lie outside the string on either side.
	point := int64(len(intPart)) + exponent

	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return 1
	}
	point -= int64(len(digits) - len(trimmed))

	switch {
	case point <= 0:
		// Pure fraction: the zeros between the point and the first digit are leading.
		return len(strings.TrimRight(trimmed, "0"))
	case point >= int64(len(trimmed)):
		// Integer: every digit counts, plus the zeros the exponent appends.
		return int(point)
	default:
		return int(point) + len(strings.TrimRight(trimmed[point:], "0"))
	}
}

// splitExponent separates "1.5e-3" into "1.5" and -3. A missing or malformed
// exponent is 0; one beyond maxExponent is clamped.
func splitExponent(text string) (string, int64) {
	i := strings.IndexAny(text, "eE")
	if i < 0 {
		return text, 0
	}
	mantissa, exp := text[:i], text[i+1:]
	n, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		if !stderrors.Is(err, strconv.ErrRange) {
			return mantissa, 0
		}
		n = maxExponent
		if strings.HasPrefix(exp, "-") {
			n = -maxExponent
		}
	}
	if n > maxExponent {
		n = maxExponent
	} else if n < -maxExponent {
		n = -maxExponent
	}
	return mantissa, n
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
