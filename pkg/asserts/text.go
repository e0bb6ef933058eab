package asserts

import "digital.vasic.asserts/pkg/format"

// Regex fails if the text does not match the regular
// expression. The pattern can be given as a string or as a
// compiled *regexp.Regexp; matching is an unanchored search.
//
// The following template names are supported:
//   - msg - the default error message
//   - text - the text that is matched
//   - pattern - the regular expression pattern as a string
func Regex(text string, pattern any, msgFmt ...string) {
	re := compilePattern(pattern)
	if !re.MatchString(text) {
		raiseFailure(
			pickFmt(msgFmt),
			"'"+text+"' does not match '"+re.String()+"'",
			format.Context{
				{Key: "text", Value: text},
				{Key: "pattern", Value: re.String()},
			},
		)
	}
}
