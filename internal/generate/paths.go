package generate

import (
	"fmt"
	"path"

	"github.com/agentic-research/promptgen/api"
)

// ResolvePath maps a record to its output directory and file, relative to
// the generation root:
//
//	{sectionSlug}/{topicIndex}-{topicSlug}.md
//
// The mapping is pure — same record, same path, no hidden state.
func ResolvePath(rec api.TopicRecord) (dir, file string) {
	dir = rec.SectionSlug
	file = path.Join(dir, fmt.Sprintf("%d-%s.md", rec.TopicIndex, rec.TopicSlug))
	return dir, file
}

// checkPathUniqueness asserts that no two records resolve to the same file.
// The registry's index-uniqueness invariant implies this, but the resolver
// verifies it instead of trusting it.
func checkPathUniqueness(records []api.TopicRecord) error {
	seen := make(map[string]api.TopicRecord, len(records))
	for _, rec := range records {
		_, file := ResolvePath(rec)
		if prev, ok := seen[file]; ok {
			return fmt.Errorf("topics %d (%s) and %d (%s) both resolve to %s",
				prev.TopicIndex, prev.TopicSlug, rec.TopicIndex, rec.TopicSlug, file)
		}
		seen[file] = rec
	}
	return nil
}
