package format

import (
	"strings"

	"digital.vasic.asserts/pkg/signal"
)

// Default is the passthrough template: it reproduces the
// computed default message unmodified.
const Default = "{msg}"

// Message renders a failure message from a template, the
// assertion's computed default message, and the assertion's
// named context values. The default message is always available
// as {msg} and takes precedence over any caller-supplied entry
// of the same name. The function is pure: identical inputs yield
// identical output.
//
// Placeholders are written {name}, with optional drill-down into
// structured values: {first.Name}, {items[0]}, {env[HOME]}.
// Literal braces are escaped by doubling: {{ and }}. A template
// referencing anything the context cannot resolve raises a
// FormatError signal.
func Message(tmpl, defaultMsg string, ctx Context) string {
	full := make(Context, 0, len(ctx)+1)
	full = append(full, Field{Key: "msg", Value: defaultMsg})
	full = append(full, ctx...)

	var b strings.Builder
	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				signal.Raisef(
					signal.FormatError,
					"unterminated placeholder in template %q",
					tmpl,
				)
			}
			path := tmpl[i+1 : i+end]
			b.WriteString(renderValue(resolvePath(path, full)))
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			signal.Raisef(
				signal.FormatError,
				"single '}' in template %q", tmpl,
			)
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}
	return b.String()
}
