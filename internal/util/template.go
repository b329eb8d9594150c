package util

import (
	"bytes"
	"strings"
	"text/template"
)

// RenderTemplate executes text as a text/template against data. Only the
// template text is parsed; values in data are inserted verbatim, so user
// supplied strings containing template markers are never interpreted.
func RenderTemplate(text string, data any) (string, error) {
	if !strings.Contains(text, "{{") { // fast path: no template markers
		return text, nil
	}

	tmpl, err := template.New("prompt").Funcs(template.FuncMap{
		"indent": Indent,
		"lower":  strings.ToLower,
		"join":   strings.Join,
	}).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Indent replaces every newline in s with a newline followed by prefix.
func Indent(prefix, s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
