package prompt

// DefaultTemplate is the prompt handed to the external text-generation tool
// for each topic. The generator substitutes {SECTION_NAME}, {TOPIC_NAME} and
// {TOPIC_INDEX}. The {SECTION_INDEX}, {SECTION_SLUG} and {TOPIC_SLUG} tokens
// inside the conventions block are documentation for the downstream tool's
// own substitution pass and are emitted verbatim.
const DefaultTemplate = `# Article prompt — {TOPIC_NAME}

You are a principal engineer writing for a Node.js production engineering
knowledge base read by senior backend developers.

**Section:** {SECTION_NAME}
**Article number:** {TOPIC_INDEX}
**Topic:** {TOPIC_NAME}

## What to write

Produce the complete article for this topic as a single Markdown document.

1. Long-form and deep: 2000+ words aimed at engineers who already run
   Node.js in production. Skip beginner material entirely.
2. Open with a concrete production failure scenario that motivates the
   topic — an incident, an outage, a subtle bug that shipped.
3. Explain the runtime mechanics underneath the topic (event loop phases,
   libuv thread pool, V8 heap behavior, socket lifecycle — whatever
   actually applies). Name the real APIs and flags.
4. Include runnable code samples targeting current Node.js LTS, ESM style.
   Every sample must be complete enough to paste and run.
5. Include at least one mermaid diagram where a flow or state machine is
   involved.
6. Cover the failure modes: what breaks, how it presents in production
   telemetry, and how to detect it before customers do.
7. Close with a summary table of the key decisions and a short list of
   takeaways.

## House conventions

Articles are filed in the knowledge base as
` + "`{SECTION_SLUG}/{TOPIC_INDEX}-{TOPIC_SLUG}.md`" + `; section folders carry
a numeric prefix derived from {SECTION_INDEX}. Do not expand
{SECTION_SLUG}, {SECTION_INDEX} or {TOPIC_SLUG} yourself — the filing
tooling substitutes those when the article is saved. Use ATX headings,
fenced code blocks with language tags, and no HTML.

Write the article now. Output only the Markdown document, no preamble.
`
