// Package prompt renders the article prompt for a topic by substituting the
// topic's fields into a fixed template. Substitution is a single pass over
// the template text: replacement values are never rescanned, so a topic name
// that itself contains placeholder-shaped text cannot be double-substituted.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentic-research/promptgen/api"
)

// ErrRender is the kind for all template substitution failures.
var ErrRender = errors.New("prompt render failed")

// RenderError reports an unresolved or unknown placeholder token.
type RenderError struct {
	Token string
	Msg   string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrRender.Error(), e.Token, e.Msg)
}

func (e *RenderError) Unwrap() error { return ErrRender }

// placeholderPattern matches any {ALL_CAPS} token in the template.
var placeholderPattern = regexp.MustCompile(`\{[A-Z][A-Z0-9_]*\}`)

// passthrough tokens belong to the downstream tool's substitution pass and
// are emitted verbatim.
var passthrough = map[string]bool{
	"{SECTION_INDEX}": true,
	"{SECTION_SLUG}":  true,
	"{TOPIC_SLUG}":    true,
}

// Render substitutes the record's fields into template.
//
// Substitution is total: every {SECTION_NAME}, {TOPIC_NAME} and
// {TOPIC_INDEX} occurrence in the template is replaced, and any other
// non-passthrough {ALL_CAPS} token is a RenderError rather than a silently
// retained literal.
func Render(template string, rec api.TopicRecord) (string, error) {
	values := map[string]string{
		"{SECTION_NAME}": rec.SectionName,
		"{TOPIC_NAME}":   rec.TopicName,
		"{TOPIC_INDEX}":  strconv.Itoa(rec.TopicIndex),
	}

	var out strings.Builder
	out.Grow(len(template))

	last := 0
	for _, loc := range placeholderPattern.FindAllStringIndex(template, -1) {
		token := template[loc[0]:loc[1]]
		out.WriteString(template[last:loc[0]])
		last = loc[1]

		if passthrough[token] {
			out.WriteString(token)
			continue
		}
		value, ok := values[token]
		if !ok {
			return "", &RenderError{Token: token, Msg: "unknown placeholder in template"}
		}
		out.WriteString(value)
	}
	out.WriteString(template[last:])

	// Totality postcondition: no substitutable token survives in the
	// output, unless a record field itself contains that literal text
	// (data, not a placeholder).
	rendered := out.String()
	for token := range values {
		if !strings.Contains(rendered, token) || introducedByValue(values, token) {
			continue
		}
		return "", &RenderError{Token: token, Msg: "unresolved placeholder in rendered output"}
	}
	return rendered, nil
}

func introducedByValue(values map[string]string, token string) bool {
	for _, v := range values {
		if strings.Contains(v, token) {
			return true
		}
	}
	return false
}

// Check scans a template once and reports the first token Render would
// reject, so a bad custom template fails before any topic is processed.
func Check(template string) error {
	for _, token := range placeholderPattern.FindAllString(template, -1) {
		if passthrough[token] {
			continue
		}
		switch token {
		case "{SECTION_NAME}", "{TOPIC_NAME}", "{TOPIC_INDEX}":
		default:
			return &RenderError{Token: token, Msg: "unknown placeholder in template"}
		}
	}
	return nil
}

// LoadTemplate reads a custom template file and checks it.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	tmpl := string(data)
	if err := Check(tmpl); err != nil {
		return "", fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}
