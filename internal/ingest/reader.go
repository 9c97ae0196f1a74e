// Package ingest reads line-delimited review input. Each line is either a
// JSON record carrying at least a text field and optionally a numeric
// rating, or a bare text review. A line starting with "{" is always
// treated as a JSON record: if it fails to parse it is skipped and
// counted, never scored as literal review text, so corrupt records cannot
// pollute the results.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/utils"
)

const maxLineBytes = 1024 * 1024

// ReadFile loads reviews from path. Returns the inputs and the number of
// lines skipped as malformed or empty records.
func ReadFile(path string) ([]models.ReviewInput, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses line-delimited reviews. Brace-leading lines that fail to
// parse as JSON or carry no text are skipped and counted rather than
// failing the load or falling back to plain text. Review text is
// flattened to plain text before scoring.
func Read(r io.Reader) ([]models.ReviewInput, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var inputs []models.ReviewInput
	skipped := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "{") {
			var in models.ReviewInput
			if err := utils.DeserializeFromJSON([]byte(line), &in); err != nil {
				skipped++
				continue
			}
			if strings.TrimSpace(in.Text) == "" {
				skipped++
				continue
			}
			in.Text = Flatten(in.Text)
			inputs = append(inputs, in)
			continue
		}

		inputs = append(inputs, models.ReviewInput{Text: Flatten(line)})
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}
	return inputs, skipped, nil
}
