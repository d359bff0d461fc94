package references

import (
	"html"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	paragraphRegex = regexp.MustCompile(`(?s)<p>(.*?)</p>`)
	urlRegex       = regexp.MustCompile(`(http|ftp|https)://([\w_-]+(?:(?:\.[\w_-]+)+))([\w.,@?^=%&:/~+#-]*[\w@?^=%&/~+#-])`)
	doiRegex       = regexp.MustCompile(`10\.[0-9a-zA-Z]+/[^"&'\s]+`)

	textPolicy = bluemonday.StrictPolicy()
)

// Extract turns a block of rich-text HTML into candidate references, one per
// non-empty paragraph. Classification is a heuristic: a paragraph with no URL
// is free text, otherwise the last DOI-looking URL wins, otherwise the last
// URL. Multiple URLs in one paragraph are never surfaced to the user.
func Extract(publicationID, content string) []Reference {
	paragraphs := paragraphRegex.FindAllString(content, -1)
	if len(paragraphs) == 0 {
		return nil
	}

	var out []Reference
	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)

		text := strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(paragraph)))
		if text == "" {
			continue
		}

		urls := urlRegex.FindAllString(text, -1)
		if len(urls) == 0 {
			out = append(out, Reference{
				ID:            uuid.NewString(),
				PublicationID: publicationID,
				Type:          TypeText,
				Text:          paragraph,
				Location:      nil,
			})
			continue
		}

		// only the last DOI/URL matters, so walk the matches backwards
		reversed := make([]string, 0, len(urls))
		for i := len(urls) - 1; i >= 0; i-- {
			reversed = append(reversed, urls[i])
		}

		var doiURL string
		for _, match := range reversed {
			if doiRegex.MatchString(match) {
				doiURL = match
				break
			}
		}

		if doiURL != "" {
			location := doiURL
			out = append(out, Reference{
				ID:            uuid.NewString(),
				PublicationID: publicationID,
				Type:          TypeDOI,
				Text:          paragraph,
				Location:      &location,
			})
			continue
		}

		location := reversed[0]
		out = append(out, Reference{
			ID:            uuid.NewString(),
			PublicationID: publicationID,
			Type:          TypeURL,
			Text:          paragraph,
			Location:      &location,
		})
	}

	return out
}
