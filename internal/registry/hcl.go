package registry

import (
	"fmt"

	"github.com/agentic-research/promptgen/api"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCL registry shape:
//
//	section "06-security" {
//	  name = "F. Security (Senior-level expectation)"
//
//	  topic "rate-limit-bypass-attacks" {
//	    index = 56
//	    name  = "Rate-limit bypass attacks"
//	  }
//	}
type hclRegistry struct {
	Sections []hclSection `hcl:"section,block"`
}

type hclSection struct {
	Slug   string     `hcl:"slug,label"`
	Name   string     `hcl:"name"`
	Topics []hclTopic `hcl:"topic,block"`
}

type hclTopic struct {
	Slug  string `hcl:"slug,label"`
	Index int    `hcl:"index"`
	Name  string `hcl:"name"`
}

func parseHCL(src []byte, filename string) ([]api.TopicRecord, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var root hclRegistry
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
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
