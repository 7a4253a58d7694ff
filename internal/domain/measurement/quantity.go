package measurement

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseResult is the outcome of parsing a quantity expression.
// Degraded is set when any token failed to parse and contributed zero,
// so callers can tell "parsed exactly" from "best effort".
type ParseResult struct {
	Value    float64
	Degraded bool
}

// amountPattern splits a combined "amount + unit" string into its leading
// numeric part (digits, dots, slashes, spaces) and the trailing unit text.
var amountPattern = regexp.MustCompile(`^([\d./\s]+)(.*)$`)

// ParseAmount converts a human-entered quantity expression into a number.
// Accepted forms: "2", "1.5", "1/2", "1 1/2". Malformed tokens contribute
// zero rather than failing; a completely unparseable string yields zero.
// One bad ingredient line must never abort a whole shopping-list run.
func ParseAmount(text string) ParseResult {
	str := strings.TrimSpace(text)
	if str == "" {
		return ParseResult{Degraded: true}
	}

	if !strings.Contains(str, "/") {
		value, err := strconv.ParseFloat(str, 64)
		if err != nil || !isFinite(value) {
			return ParseResult{Degraded: true}
		}
		return ParseResult{Value: value}
	}

	var total float64
	degraded := false
	for _, part := range strings.Fields(str) {
		if num, denom, ok := strings.Cut(part, "/"); ok {
			n, errN := strconv.ParseFloat(num, 64)
			d, errD := strconv.ParseFloat(denom, 64)
			// A zero denominator would poison every downstream sum
			// with a non-finite value; treat it as unparseable.
			if errN != nil || errD != nil || d == 0 || !isFinite(n/d) {
				degraded = true
				continue
			}
			total += n / d
			continue
		}

		value, err := strconv.ParseFloat(part, 64)
		if err != nil || !isFinite(value) {
			degraded = true
			continue
		}
		total += value
	}

	return ParseResult{Value: total, Degraded: degraded}
}

// SplitAmount separates a legacy combined amount string such as "200 g" or
// "1 1/2 cups" into its numeric part and unit part. It is the single parsing
// routine for data ingested before quantity and unit became separate fields.
func SplitAmount(combined string) (amount string, unit string) {
	match := amountPattern.FindStringSubmatch(strings.TrimSpace(combined))
	if match == nil {
		return "", strings.TrimSpace(combined)
	}
	return strings.TrimSpace(match[1]), strings.TrimSpace(match[2])
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
