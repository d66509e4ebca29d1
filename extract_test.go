package webscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDocHTML = `
<html>
<head>
	<title>Blue Heron Coffee in Portland</title>
	<meta name="description" content="Blue Heron Coffee roasts small batches in Portland, OR">
	<meta property="og:title" content="Blue Heron Coffee">
	<meta property="og:description" content="Small batch roastery">
	<meta property="og:url" content="https://blueheron.example.com/">
	<link rel="canonical" href="https://blueheron.example.com/">
</head>
<body>
<header><a href="/about">About</a></header>
<nav><ul><li><a href="/menu">Our menu</a></li></ul></nav>
<main>
	<h1 id="welcome">Blue Heron Coffee in Portland</h1>
	<h2 id="beans">Our beans</h2>
	<p>We roast single origin beans every morning in our Portland roastery.</p>
	<ul><li>Ethiopia</li><li>Colombia</li></ul>
	<table><tr><td>Opening hours</td><td>7-16</td></tr></table>
	<img src="/img/roaster.jpg" alt="Blue Heron roaster">
	<img src="/img/logo.png" alt="">
	<a href="/beans">Single origin beans</a>
</main>
<footer>Footer text that should not count</footer>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"LocalBusiness","name":"Blue Heron Coffee","telephone":"+1-503-555-0100","address":{"@type":"PostalAddress","streetAddress":"12 Water St","addressLocality":"Portland","addressRegion":"OR","postalCode":"97201"}}</script>
<script type="application/ld+json">this is { not json</script>
<script type="application/ld+json">[{"@type":"BreadcrumbList"},{"@type":"FAQPage"}]</script>
</body>
</html>
`

func TestParse(t *testing.T) {
	page := Parse(testDocHTML)

	assert.Equal(t, "Blue Heron Coffee in Portland", page.Title)
	assert.Equal(t, "Blue Heron Coffee roasts small batches in Portland, OR", page.Description)
	assert.Equal(t, "https://blueheron.example.com/", page.CanonicalURL)
	assert.False(t, page.Noindex)

	assert.Equal(t, "Blue Heron Coffee", page.OGTitle)
	assert.Equal(t, "", page.OGImage)

	assert.Equal(t, "Blue Heron Coffee in Portland", page.PrimaryHeading)
	assert.Equal(t, []string{"Blue Heron Coffee in Portland"}, page.Level1Headings)
	assert.Len(t, page.Headings, 2)
	assert.Equal(t, "welcome", page.Headings[0].AnchorID)

	assert.Len(t, page.Images, 2)
	assert.Equal(t, "Blue Heron roaster", page.Images[0].Alt)
}

func TestParseStructuredDataSkipsBrokenBlocks(t *testing.T) {
	page := Parse(testDocHTML)
	// one malformed block among three, the array block counts as two items
	assert.Len(t, page.StructuredData, 3)
	assert.Equal(t, "LocalBusiness", page.StructuredData[0]["@type"])
	assert.Equal(t, "BreadcrumbList", page.StructuredData[1]["@type"])
}

func TestParseMainContent(t *testing.T) {
	page := Parse(testDocHTML)
	assert.Contains(t, page.BodyText, "single origin beans")
	assert.NotContains(t, page.BodyText, "Footer text")
	assert.NotContains(t, page.BodyText, "Our menu")
	assert.Equal(t, 1, page.ListCount)
	assert.Equal(t, 1, page.TableCount)
}

func TestParsePicksLongestContainer(t *testing.T) {
	html := `
	<html><body>
	<main></main>
	<article>This article is clearly the real content of the page.</article>
	<div>loose body text</div>
	</body></html>`
	page := Parse(html)
	assert.Contains(t, page.BodyText, "real content")
}

func TestParseFallsBackToBody(t *testing.T) {
	page := Parse(`<html><body><p>just a paragraph</p></body></html>`)
	assert.Equal(t, "just a paragraph", page.BodyText)
}

func TestParseNoindex(t *testing.T) {
	page := Parse(`<html><head><meta name="robots" content="noindex,nofollow"></head></html>`)
	assert.True(t, page.Noindex)
}

func TestParseEmptyDoc(t *testing.T) {
	page := Parse("")
	assert.Equal(t, "", page.Title)
	assert.Empty(t, page.Images)
	assert.Empty(t, page.StructuredData)
}

func TestParseCountsFormsAndVideos(t *testing.T) {
	html := `
	<html><body>
	<form>
		<label for="name">Name</label><input id="name" type="text">
		<input type="email">
		<input type="hidden" name="csrf">
		<input type="submit" value="Go">
	</form>
	<video><track kind="captions" src="/cap.vtt"></video>
	<video></video>
	</body></html>`
	page := Parse(html)
	assert.Equal(t, 2, page.InputCount)
	assert.Equal(t, 1, page.LabelCount)
	assert.Equal(t, 2, page.VideoCount)
	assert.Equal(t, 1, page.CaptionedVideos)
}

func TestParseIdempotent(t *testing.T) {
	assert.Equal(t, Parse(testDocHTML), Parse(testDocHTML))
}
