package ingest

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// Flatten renders markdown review text to plain text. Scraped reviews
// often carry markup and links that would otherwise leak tokens into
// scoring. Link text survives, URLs do not.
func Flatten(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")

	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(rendered), " ")
	plain = urlPattern.ReplaceAllString(plain, "")

	return strings.Join(strings.Fields(plain), " ")
}
