// Package krw formats won amounts the way the storefront prints them.
package krw

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format groups n with the ko-KR separator: 12345 -> "12,345".
func Format(n int) string {
	return message.NewPrinter(language.Korean).Sprintf("%d", n)
}

// Won appends the currency unit: 12345 -> "12,345원".
func Won(n int) string {
	return Format(n) + "원"
}
