package webscore

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RobertCam/webscore/vo"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// mainContentSelectors are probed in order. Whichever matched container
// yields the longest text wins, so a real content block beats an empty
// placeholder of the same kind.
var mainContentSelectors = []string{
	"main",
	"[role=main]",
	"article",
	"#content",
	"#main",
	".content",
	".main-content",
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Parse extracts the normalized fact set from an HTML document. It never
// fails: malformed HTML degrades to absent fields, and a malformed JSON-LD
// block is skipped without touching its siblings.
func Parse(html string) vo.ParsedPage {
	page := vo.ParsedPage{}
	doc, errNewDoc := goquery.NewDocumentFromReader(strings.NewReader(html))
	if errNewDoc != nil {
		return page
	}

	page.Title = collapse(doc.Find("title").First().Text())
	page.Description = collapse(doc.Find("meta[name=description]").First().AttrOr("content", ""))
	page.CanonicalURL = strings.TrimSpace(doc.Find("link[rel=canonical]").First().AttrOr("href", ""))
	robots, _ := doc.Find("meta[name=robots]").First().Attr("content")
	page.Noindex = strings.Contains(strings.ToLower(robots), "noindex")

	page.OGTitle = collapse(doc.Find(`meta[property="og:title"]`).First().AttrOr("content", ""))
	page.OGDescription = collapse(doc.Find(`meta[property="og:description"]`).First().AttrOr("content", ""))
	page.OGURL = strings.TrimSpace(doc.Find(`meta[property="og:url"]`).First().AttrOr("content", ""))
	page.OGImage = strings.TrimSpace(doc.Find(`meta[property="og:image"]`).First().AttrOr("content", ""))

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(i int, sel *goquery.Selection) {
		level := 0
		switch goquery.NodeName(sel) {
		case "h1":
			level = 1
		case "h2":
			level = 2
		case "h3":
			level = 3
		case "h4":
			level = 4
		case "h5":
			level = 5
		case "h6":
			level = 6
		}
		heading := vo.Heading{
			Level:    level,
			Text:     collapse(sel.Text()),
			AnchorID: sel.AttrOr("id", ""),
		}
		page.Headings = append(page.Headings, heading)
		if level == 1 {
			page.Level1Headings = append(page.Level1Headings, heading.Text)
			if page.PrimaryHeading == "" {
				page.PrimaryHeading = heading.Text
			}
		}
	})

	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists {
			return
		}
		page.Images = append(page.Images, vo.Image{
			Src: src,
			Alt: strings.TrimSpace(sel.AttrOr("alt", "")),
		})
	})

	doc.Find("a").Each(func(i int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		page.Links = append(page.Links, vo.Link{
			Href: href,
			Text: collapse(sel.Text()),
		})
	})

	page.StructuredData = extractStructuredData(doc)

	page.NavCount = doc.Find("nav").Length()
	page.LabelCount = doc.Find("label").Length()
	doc.Find("input, select, textarea").Each(func(i int, sel *goquery.Selection) {
		switch sel.AttrOr("type", "") {
		case "hidden", "submit", "button", "reset", "image":
			return
		}
		page.InputCount++
	})
	doc.Find("video").Each(func(i int, sel *goquery.Selection) {
		page.VideoCount++
		if videoHasCaptions(sel) {
			page.CaptionedVideos++
		}
	})

	// non-content elements go before the main container probe
	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	main := doc.Find("body")
	bestLen := -1
	for _, selector := range mainContentSelectors {
		candidate := doc.Find(selector).First()
		if candidate.Length() == 0 {
			continue
		}
		if l := len(collapse(candidate.Text())); l > bestLen {
			main = candidate
			bestLen = l
		}
	}
	page.BodyText = collapse(main.Text())
	page.ListCount = main.Find("ul, ol").Length()
	page.TableCount = main.Find("table").Length()

	return page
}

func extractStructuredData(doc *goquery.Document) []map[string]interface{} {
	var items []map[string]interface{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, sel *goquery.Selection) {
		var raw interface{}
		errUnmarshal := json.Unmarshal([]byte(sel.Text()), &raw)
		if errUnmarshal != nil {
			// broken block, the others still count
			return
		}
		switch v := raw.(type) {
		case map[string]interface{}:
			items = append(items, v)
		case []interface{}:
			for _, entry := range v {
				if m, ok := entry.(map[string]interface{}); ok {
					items = append(items, m)
				}
			}
		}
	})
	return items
}

func videoHasCaptions(sel *goquery.Selection) bool {
	captioned := false
	sel.Find("track").Each(func(i int, track *goquery.Selection) {
		switch strings.ToLower(track.AttrOr("kind", "subtitles")) {
		case "captions", "subtitles":
			captioned = true
		}
	})
	if captioned {
		return true
	}
	parentText := strings.ToLower(sel.Parent().Text())
	return strings.Contains(parentText, "transcript") || strings.Contains(parentText, "captions")
}
