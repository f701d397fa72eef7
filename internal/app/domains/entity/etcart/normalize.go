package etcart

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxQty bounds a single quantity; larger values are treated as garbage.
const MaxQty = math.MaxInt32

var kgPattern = regexp.MustCompile(`(?i)kg`)

// labelRune reports whether r may start a label: ASCII letters and digits,
// underscore, Hangul jamo (ㄱ-ㅎ) and Hangul syllables (가-힣).
func labelRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case r >= 'ㄱ' && r <= 'ㅎ':
		return true
	case r >= '가' && r <= '힣':
		return true
	}
	return false
}

// StripLabel trims s and drops leading decoration such as emoji or bullets.
func StripLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !labelRune(r) })
	return strings.TrimSpace(s)
}

// NormalizeProductID resolves a stored or submitted product reference to a
// catalog id. Legacy rows saved display names instead of ids, so the label
// (name, or the id itself when name is empty) is matched against catalog names.
// Unmatched references are kept as their stripped text.
func NormalizeProductID(productID, name string) ProductID {
	raw := StripLabel(productID)
	if IsKnownProduct(raw) {
		return raw
	}

	label := name
	if label == "" {
		label = productID
	}
	label = StripLabel(label)

	for _, p := range catalog {
		if strings.Contains(label, p.Name) {
			return p.ID
		}
	}

	if raw != "" {
		return raw
	}
	return label
}

// NormalizePack maps a pack value ("2", "2kg", "3 KG") to an allowed pack size
// of the product, falling back to the product default.
func NormalizePack(pack string, productID ProductID) int {
	rule := productRule(productID)

	p, ok := parseLeadingInt(kgPattern.ReplaceAllString(pack, ""))
	if !ok || p <= 0 {
		p = rule.DefaultPack
	}
	if !rule.AllowsPack(p) {
		p = rule.DefaultPack
	}
	return p
}

// NormalizeQty keeps the digits of qty and returns a positive quantity,
// defaulting to 1.
func NormalizeQty(qty string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, qty)
	if digits == "" {
		return 1
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > MaxQty {
		return 1
	}
	return n
}

// PositiveQty returns n when it is a valid quantity and 1 otherwise.
func PositiveQty(n int) int {
	if n < 1 || n > MaxQty {
		return 1
	}
	return n
}

// PackOf normalizes a loosely typed pack value.
func PackOf(pack Loose, productID ProductID) int {
	return NormalizePack(textOf(pack), productID)
}

// QtyOf normalizes a loosely typed quantity. Numbers and strings both go
// through NormalizeQty on their text, so -3 and "-3" read as 3 and 2.5 as 25;
// absent values count as 1.
func QtyOf(qty Loose) int {
	if qty.Kind() == KindMissing || qty.Kind() == KindNull {
		return 1
	}
	return NormalizeQty(qty.String())
}

func textOf(l Loose) string {
	return l.Text()
}

// parseLeadingInt reads an optionally signed decimal integer at the start of s,
// after leading whitespace, ignoring whatever follows it.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
