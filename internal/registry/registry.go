// Package registry loads and validates the topic registry that drives a
// generation pass. Validation is eager and fail-closed: an invalid registry
// never reaches the generator, so no file is written for a bad pass.
package registry

import (
	"regexp"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/promptgen/api"
)

// slugPattern is the canonical filesystem- and URL-safe identifier shape:
// lowercase ASCII letters and digits in hyphen-separated runs.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Registry is an ordered, read-only sequence of topic records.
// Order is declaration order, preserved for auditability of run output.
type Registry struct {
	records []api.TopicRecord
}

// New wraps records without validating them. Callers that did not obtain
// the records from Load must call Validate before generating.
func New(records []api.TopicRecord) *Registry {
	return &Registry{records: records}
}

// Records returns the records in declaration order.
func (r *Registry) Records() []api.TopicRecord { return r.records }

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.records) }

// Sections returns one summary per section, in first-appearance order.
func (r *Registry) Sections() []api.Section {
	var out []api.Section
	pos := make(map[string]int)
	for _, rec := range r.records {
		i, ok := pos[rec.SectionSlug]
		if !ok {
			i = len(out)
			pos[rec.SectionSlug] = i
			out = append(out, api.Section{Slug: rec.SectionSlug, Name: rec.SectionName})
		}
		out[i].Topics++
	}
	return out
}

// Find returns the record with the given topic index.
func (r *Registry) Find(topicIndex int) (api.TopicRecord, bool) {
	for _, rec := range r.records {
		if rec.TopicIndex == topicIndex {
			return rec, true
		}
	}
	return api.TopicRecord{}, false
}

// Validate checks every registry invariant and returns the first violation:
//
//   - all five fields populated, TopicIndex positive
//   - slug fields match slugPattern
//   - TopicIndex globally unique
//   - each SectionSlug paired with exactly one SectionName
func (r *Registry) Validate() error {
	if len(r.records) == 0 {
		return &ValidationError{Field: "records", Msg: "registry is empty"}
	}

	seen := roaring.New()
	sectionNames := make(map[string]string)

	for _, rec := range r.records {
		ref := recordRef{index: rec.TopicIndex, slug: rec.TopicSlug}

		if rec.TopicIndex <= 0 {
			return invalidf(ref, "topic_index", "must be a positive integer, got %d", rec.TopicIndex)
		}
		if rec.SectionName == "" {
			return invalidf(ref, "section_name", "must not be empty")
		}
		if rec.TopicName == "" {
			return invalidf(ref, "topic_name", "must not be empty")
		}
		if rec.SectionSlug == "" {
			return invalidf(ref, "section_slug", "must not be empty")
		}
		if rec.TopicSlug == "" {
			return invalidf(ref, "topic_slug", "must not be empty")
		}
		if !slugPattern.MatchString(rec.SectionSlug) {
			return invalidf(ref, "section_slug", "invalid slug %q: must match %s", rec.SectionSlug, slugPattern)
		}
		if !slugPattern.MatchString(rec.TopicSlug) {
			return invalidf(ref, "topic_slug", "invalid slug %q: must match %s", rec.TopicSlug, slugPattern)
		}

		idx := uint32(rec.TopicIndex)
		if seen.Contains(idx) {
			return invalidf(ref, "topic_index", "duplicate index %d", rec.TopicIndex)
		}
		seen.Add(idx)

		if name, ok := sectionNames[rec.SectionSlug]; ok {
			if name != rec.SectionName {
				return invalidf(ref, "section_name",
					"section %q already declared as %q, now %q", rec.SectionSlug, name, rec.SectionName)
			}
		} else {
			sectionNames[rec.SectionSlug] = rec.SectionName
		}
	}
	return nil
}
