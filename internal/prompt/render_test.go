package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/promptgen/api"
)

var testRecord = api.TopicRecord{
	SectionName: "F. Security",
	SectionSlug: "06-security",
	TopicIndex:  56,
	TopicName:   "Rate-limit bypass attacks",
	TopicSlug:   "rate-limit-bypass-attacks",
}

func TestRender_SubstitutesTopLevelTokens(t *testing.T) {
	out, err := Render(DefaultTemplate, testRecord)
	require.NoError(t, err)

	assert.Contains(t, out, "F. Security")
	assert.Contains(t, out, "Rate-limit bypass attacks")
	assert.Contains(t, out, "**Article number:** 56")

	assert.NotContains(t, out, "{SECTION_NAME}")
	assert.NotContains(t, out, "{TOPIC_NAME}")
	assert.NotContains(t, out, "{TOPIC_INDEX}")
}

func TestRender_PassesThroughNestedTokens(t *testing.T) {
	out, err := Render(DefaultTemplate, testRecord)
	require.NoError(t, err)

	// These belong to the downstream tool's substitution pass.
	assert.Contains(t, out, "{SECTION_SLUG}")
	assert.Contains(t, out, "{TOPIC_SLUG}")
	assert.Contains(t, out, "{SECTION_INDEX}")
}

func TestRender_Deterministic(t *testing.T) {
	a, err := Render(DefaultTemplate, testRecord)
	require.NoError(t, err)
	b, err := Render(DefaultTemplate, testRecord)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender_UnknownTokenFails(t *testing.T) {
	_, err := Render("intro {MYSTERY_TOKEN} outro", testRecord)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)

	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "{MYSTERY_TOKEN}", rerr.Token)
}

func TestRender_ValueContainingPlaceholderTextIsNotResubstituted(t *testing.T) {
	rec := testRecord
	rec.TopicName = "Names like {TOPIC_NAME} in titles"

	out, err := Render("Topic: {TOPIC_NAME} ({TOPIC_INDEX})", rec)
	require.NoError(t, err)

	// The literal text from the record survives untouched, exactly once
	// per template token.
	assert.Equal(t, "Topic: Names like {TOPIC_NAME} in titles (56)", out)
}

func TestRender_TemplateWithoutTokens(t *testing.T) {
	out, err := Render("static text only", testRecord)
	require.NoError(t, err)
	assert.Equal(t, "static text only", out)
}

func TestRender_AdjacentTokens(t *testing.T) {
	out, err := Render("{TOPIC_INDEX}{SECTION_NAME}{TOPIC_INDEX}", testRecord)
	require.NoError(t, err)
	assert.Equal(t, "56F. Security56", out)
}

func TestRender_LowercaseBracesAreNotTokens(t *testing.T) {
	out, err := Render("code sample: {notAToken} and {x}", testRecord)
	require.NoError(t, err)
	assert.Equal(t, "code sample: {notAToken} and {x}", out)
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(DefaultTemplate))

	err := Check("has {BOGUS} token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRender)
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(good, []byte("# {TOPIC_NAME}\nSection {SECTION_NAME}\n"), 0o644))
	tmpl, err := LoadTemplate(good)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tmpl, "{TOPIC_NAME}"))

	bad := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("# {WRONG_TOKEN}\n"), 0o644))
	_, err = LoadTemplate(bad)
	require.Error(t, err)

	_, err = LoadTemplate(filepath.Join(dir, "absent.md"))
	require.Error(t, err)
}
