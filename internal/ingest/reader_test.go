package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMixedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"reviewText": "Great product", "overall": 5}`,
		`plain text review line`,
		``,
		`{"reviewText": "Broken on arrival", "overall": 1.5}`,
		`{not valid json`,
		`{"overall": 3}`,
	}, "\n")

	reviews, skipped, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, skipped, "malformed and text-less records are skipped")
	require.Len(t, reviews, 3)

	assert.Equal(t, "Great product", reviews[0].Text)
	require.NotNil(t, reviews[0].Rating)
	assert.Equal(t, 5.0, *reviews[0].Rating)

	assert.Equal(t, "plain text review line", reviews[1].Text)
	assert.Nil(t, reviews[1].Rating)

	assert.Equal(t, "Broken on arrival", reviews[2].Text)
	require.NotNil(t, reviews[2].Rating)
	assert.Equal(t, 1.5, *reviews[2].Rating)
}

// A line starting with "{" is committed to the JSON path: when it is not
// valid JSON it is skipped and counted, never ingested as literal text.
func TestReadBraceLinesAreJSONOnly(t *testing.T) {
	reviews, skipped, err := Read(strings.NewReader("{this looks like prose but leads with a brace"))
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Equal(t, 1, skipped)
}

func TestReadEmpty(t *testing.T) {
	reviews, skipped, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Zero(t, skipped)
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile("does-not-exist.ndjson")
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "I love this product",
		Flatten("I **love** this [product](https://example.com/item)"))

	assert.Equal(t, "Broken product",
		Flatten("Broken https://spam.example.com/ad product"))

	flat := Flatten("# Heading\n\nsome *emphasis* here")
	assert.NotContains(t, flat, "#")
	assert.NotContains(t, flat, "*")
	assert.Contains(t, flat, "some emphasis here")
}
