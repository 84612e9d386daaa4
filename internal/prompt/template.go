// Package prompt renders the prompts sent to the coach model. It lives in
// internal to avoid committing to public API stability prematurely.
package prompt

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"json":       toJSON,
	"jsonIndent": toJSONIndent,
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toJSON(v any) (string, error) {
	return encode(v, "")
}

func toJSONIndent(v any) (string, error) {
	return encode(v, "  ")
}

func encode(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
