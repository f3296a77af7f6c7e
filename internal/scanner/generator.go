package scanner

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Generator returns the content of the first <meta name="generator"> tag of an
// HTML body, or an empty string.
func Generator(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var generator string
	doc.Find("meta[name]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(s.AttrOr("name", ""), "generator") {
			return true
		}
		generator = strings.TrimSpace(s.AttrOr("content", ""))

		return generator == ""
	})

	return generator
}
