package registry

import (
	"fmt"

	"github.com/agentic-research/promptgen/api"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// JSON registry shape mirrors the YAML one:
//
//	{"sections": [{"slug": ..., "name": ..., "topics": [{"index": ..., "name": ..., "slug": ...}]}]}
func parseJSON(src []byte, filename string) ([]api.TopicRecord, error) {
	data, err := oj.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	sel, err := jp.ParseString("$.sections[*]")
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath: %w", err)
	}

	sections := sel.Get(data)
	if len(sections) == 0 {
		return nil, fmt.Errorf("parse %s: no sections found", filename)
	}

	var records []api.TopicRecord
	for i, s := range sections {
		sec, ok := s.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parse %s: sections[%d] is not an object", filename, i)
		}
		slug := stringField(sec, "slug")
		name := stringField(sec, "name")

		topics, _ := sec["topics"].([]any)
		for j, t := range topics {
			topic, ok := t.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("parse %s: sections[%d].topics[%d] is not an object", filename, i, j)
			}
			records = append(records, api.TopicRecord{
				SectionName: name,
				SectionSlug: slug,
				TopicIndex:  intField(topic, "index"),
				TopicName:   stringField(topic, "name"),
				TopicSlug:   stringField(topic, "slug"),
			})
		}
	}
	return records, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// intField tolerates the numeric types ojg may produce for a JSON number.
// A missing or non-numeric value yields 0, which validation then rejects.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
