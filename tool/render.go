package tool

import "strings"

// Render lists tools one per entry as `name(param: type, ...) - description`.
// Optional params carry a trailing `?`. Multi-line descriptions are kept as is.
func Render(tools []Tool) string {
	entries := make([]string, 0, len(tools))
	for _, t := range tools {
		entries = append(entries, renderOne(t))
	}
	return strings.Join(entries, "\n")
}

func renderOne(t Tool) string {
	var b strings.Builder
	b.WriteString(t.Name())
	b.WriteByte('(')
	for i, p := range t.Params() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Optional {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		b.WriteString(p.Type)
	}
	b.WriteByte(')')
	if desc := strings.TrimSpace(t.Description()); desc != "" {
		b.WriteString(" - ")
		b.WriteString(desc)
	}
	return b.String()
}
