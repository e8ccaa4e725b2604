package derive

import (
	"regexp"
)

// phoneSymbols are the separators people type into phone fields.
var phoneSymbols = regexp.MustCompile(`[-()_.\s]`)

// CleanPhone formats an area-code prefix and a phone-number string into a
// best-effort "###-###-####" shape. It is a lossy, non-validating formatter:
// it never rejects input.
//
// The number stands alone when it already carries ten digits; otherwise the
// area prefix is prepended. After the separators are stripped, a hyphen goes
// in after the third digit only when at least seven remain, and a second one
// after the seventh only when the result is longer than eight characters, so
// anything shorter than seven digits comes back unhyphenated.
func CleanPhone(area, number string) string {
	digits := phoneSymbols.ReplaceAllString(number, "")
	if len(digits) != 10 {
		digits = phoneSymbols.ReplaceAllString(area+number, "")
	}

	if len(digits) >= 7 {
		digits = digits[:3] + "-" + digits[3:]
	}
	if len(digits) > 8 {
		digits = digits[:7] + "-" + digits[7:]
	}
	return digits
}
