package api

// TopicRecord is the atomic unit of configuration driving one generated
// prompt file. Records are declared once in a registry file and are
// read-only input for a generation pass.
type TopicRecord struct {
	// SectionName is the human-readable section heading,
	// e.g. "F. Security (Senior-level expectation)".
	SectionName string `json:"section_name" yaml:"section_name"`
	// SectionSlug is the filesystem-safe section identifier with a
	// two-digit numeric prefix, e.g. "06-security".
	SectionSlug string `json:"section_slug" yaml:"section_slug"`
	// TopicIndex is a positive integer, unique across the whole registry.
	// It orders the knowledge base and prefixes the output filename.
	TopicIndex int `json:"topic_index" yaml:"topic_index"`
	// TopicName is the human-readable topic title.
	TopicName string `json:"topic_name" yaml:"topic_name"`
	// TopicSlug is the filesystem-safe identifier derived from TopicName.
	TopicSlug string `json:"topic_slug" yaml:"topic_slug"`
}

// Section summarizes one section of the registry.
type Section struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Topics int    `json:"topics"`
}
