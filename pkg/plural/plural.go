// Package plural selects grammatical word forms for numeric values in
// generated certificate text.
package plural

import "fmt"

// Russian returns the word form agreeing with n under the rule the
// certificate templates use: 1 takes the singular, 2 through 4 take the
// paucal, everything else (including zero and negatives) takes the plural.
func Russian(n int, one, few, many string) string {
	switch {
	case n == 1:
		return one
	case n > 1 && n < 5:
		return few
	default:
		return many
	}
}

// Years formats a duration in years with its agreeing noun, e.g. "4 года".
func Years(n int) string {
	return fmt.Sprintf("%d %s", n, Russian(n, "год", "года", "лет"))
}
