// Package generate orchestrates a generation pass: for each registry record
// in declaration order, resolve the output path, render the prompt and
// materialize the file, recording a per-topic result. A topic failure does
// not abort the pass unless fail-fast is set.
package generate

import (
	"fmt"
	"io"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/agentic-research/promptgen/internal/materialize"
	"github.com/agentic-research/promptgen/internal/prompt"
	"github.com/agentic-research/promptgen/internal/registry"
)

// Options configures a generation pass.
type Options struct {
	// BasePath is the root folder for generated output. Used for display
	// paths and, when Fs is nil, as the osfs root. Default ".".
	BasePath string
	// FailFast stops the pass at the first topic failure instead of
	// continuing to the next topic.
	FailFast bool
	// Template overrides prompt.DefaultTemplate when non-empty.
	Template string
	// Fs overrides the output filesystem. When nil an osfs rooted at
	// BasePath is used; tests pass a memfs.
	Fs billy.Filesystem
	// Out receives the per-topic progress lines and the summary.
	Out io.Writer
}

// TopicResult records the outcome for one topic.
type TopicResult struct {
	TopicIndex int    `json:"topic_index"`
	TopicSlug  string `json:"topic_slug"`
	Path       string `json:"path"`
	Reason     string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Report is the outcome of a whole pass, in registry order.
type Report struct {
	Results []TopicResult `json:"results"`
	Created int           `json:"created"`
	Failed  int           `json:"failed"`
}

type runState int

const (
	stateRunning runState = iota
	stateDone
)

// Generator runs a single generation pass. It is single-use: Run on a
// finished Generator is an error, which keeps reruns explicit and
// deterministic.
type Generator struct {
	opts  Options
	mat   *materialize.Materializer
	state runState
}

func New(opts Options) *Generator {
	if opts.BasePath == "" {
		opts.BasePath = "."
	}
	if opts.Template == "" {
		opts.Template = prompt.DefaultTemplate
	}
	if opts.Fs == nil {
		opts.Fs = osfs.New(opts.BasePath)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{
		opts: opts,
		mat:  materialize.New(opts.Fs),
	}
}

// Run executes the pass over reg and returns the report.
//
// The registry is re-validated and the resolved paths are checked for
// uniqueness before anything is written — both are preconditions verified
// here, not trusted. With FailFast unset a topic failure is recorded and the
// pass continues; the returned error is nil and the caller inspects
// Report.Failed. With FailFast set the first failure ends the pass and is
// returned alongside the partial report.
func (g *Generator) Run(reg *registry.Registry) (*Report, error) {
	if g.state != stateRunning {
		return nil, fmt.Errorf("generator has already run")
	}
	defer func() { g.state = stateDone }()

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	records := reg.Records()
	if err := checkPathUniqueness(records); err != nil {
		return nil, err
	}

	report := &Report{Results: make([]TopicResult, 0, len(records))}
	for _, rec := range records {
		dir, file := ResolvePath(rec)
		display := filepath.Join(g.opts.BasePath, filepath.FromSlash(file))

		result := TopicResult{
			TopicIndex: rec.TopicIndex,
			TopicSlug:  rec.TopicSlug,
			Path:       display,
		}

		content, err := prompt.Render(g.opts.Template, rec)
		if err == nil {
			err = g.mat.Materialize(dir, file, []byte(content))
		}

		if err != nil {
			result.Err = err
			result.Reason = err.Error()
			report.Failed++
			fmt.Fprintf(g.opts.Out, "FAILED: %s: %v\n", display, err)
		} else {
			report.Created++
			fmt.Fprintf(g.opts.Out, "CREATED: %s\n", display)
		}
		report.Results = append(report.Results, result)

		if err != nil && g.opts.FailFast {
			g.summarize(report)
			return report, fmt.Errorf("topic %d (%s): %w", rec.TopicIndex, rec.TopicSlug, err)
		}
	}

	g.summarize(report)
	return report, nil
}

func (g *Generator) summarize(report *Report) {
	fmt.Fprintf(g.opts.Out, "%d created, %d failed\n", report.Created, report.Failed)
}
