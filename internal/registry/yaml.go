package registry

import (
	"fmt"

	"github.com/agentic-research/promptgen/api"
	"gopkg.in/yaml.v3"
)

type yamlRegistry struct {
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Slug   string      `yaml:"slug"`
	Name   string      `yaml:"name"`
	Topics []yamlTopic `yaml:"topics"`
}

type yamlTopic struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name"`
	Slug  string `yaml:"slug"`
}

func parseYAML(src []byte, filename string) ([]api.TopicRecord, error) {
	var root yamlRegistry
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	var records []api.TopicRecord
	for _, sec := range root.Sections {
		for _, topic := range sec.Topics {
			records = append(records, api.TopicRecord{
				SectionName: sec.Name,
				SectionSlug: sec.Slug,
				TopicIndex:  topic.Index,
				TopicName:   topic.Name,
				TopicSlug:   topic.Slug,
			})
		}
	}
	return records, nil
}
