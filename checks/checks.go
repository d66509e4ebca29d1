// Package checks holds the diagnostic evaluators. Every evaluator answers
// one yes/partial/no question about a page and backs its verdict with
// evidence quoting what it saw.
package checks

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/RobertCam/webscore/vo"
)

// Context bundles everything an evaluator may consume. Robots and Sitemap
// are lazy so that the lookups only happen when a check asks for them; the
// analyzer memoizes them per request.
type Context struct {
	Raw     vo.FetchResult
	Page    vo.ParsedPage
	Derived vo.DerivedFacts

	Rendered     *vo.FetchResult
	RenderedPage *vo.ParsedPage
	RenderError  string

	Robots  func() vo.RobotsPolicy
	Sitemap func() vo.SitemapInfo

	Now time.Time
}

type Evaluator func(ctx *Context) vo.CheckResult

// registry maps every check id the rubric may reference to its evaluator.
// Rubric validation at startup requires the two sets to match exactly.
var registry = map[string]Evaluator{
	"http-status":                httpStatus,
	"noindex":                    noindex,
	"robots-allowed":             robotsAllowed,
	"gptbot-allowed":             gptBotAllowed,
	"canonical-absolute":         canonicalAbsolute,
	"render-parity":              renderParity,
	"title-present":              titlePresent,
	"description-present":        descriptionPresent,
	"title-brand-locality":       titleBrandLocality,
	"description-brand-locality": descriptionBrandLocality,
	"og-tags":                    ogTags,
	"canonical-host":             canonicalHost,
	"schema-present":             schemaPresent,
	"schema-core-type":           schemaCoreType,
	"schema-content-types":       schemaContentTypes,
	"schema-contact-fields":      schemaContactFields,
	"schema-rich-types":          schemaRichTypes,
	"schema-date-modified":       schemaDateModified,
	"single-h1-locality":         singleH1Locality,
	"heading-order":              headingOrder,
	"lists-tables":               listsTables,
	"anchored-headings":          anchoredHeadings,
	"visible-date":               visibleDate,
	"sitemap-lastmod":            sitemapLastMod,
	"brand-consistency":          brandConsistency,
	"sameas-profiles":            sameAsProfiles,
	"logo-presence":              logoPresence,
	"branded-alt-text":           brandedAltText,
	"img-alt-text":               imgAltText,
	"form-labels":                formLabels,
	"content-depth":              contentDepth,
	"nav-links":                  navLinks,
	"video-captions":             videoCaptions,
}

// IDs returns every registered check id, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func Get(id string) (Evaluator, bool) {
	e, ok := registry[id]
	return e, ok
}

func result(id string, status vo.CheckStatus, evidence ...string) vo.CheckResult {
	return vo.CheckResult{
		ID:       id,
		Status:   status,
		Evidence: evidence,
	}
}

// snippet escapes a fragment for safe display and keeps evidence short.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > 120 {
		s = string(runes[:117]) + "..."
	}
	return html.EscapeString(s)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

// fractionStatus applies the shared three-tier rule for "fraction of N
// items satisfying a property" checks. Zero applicable items always pass,
// there is nothing to fail.
func fractionStatus(satisfied, total int) vo.CheckStatus {
	if total == 0 {
		return vo.CheckStatusPass
	}
	switch {
	case satisfied == total:
		return vo.CheckStatusPass
	case percent(satisfied, total) > 50:
		return vo.CheckStatusPartial
	default:
		return vo.CheckStatusFail
	}
}

func fractionEvidence(what string, satisfied, total int) string {
	if total == 0 {
		return fmt.Sprintf("no %s on the page, nothing to fail", what)
	}
	return fmt.Sprintf("%d/%d %s (%.0f%%)", satisfied, total, what, percent(satisfied, total))
}

// renderUnavailable is the shared degraded outcome for checks that need
// the rendered snapshot.
func renderUnavailable(id string, ctx *Context) vo.CheckResult {
	reason := ctx.RenderError
	if reason == "" {
		reason = "rendered snapshot not available"
	}
	return result(id, vo.CheckStatusNA, "rendering failed: "+reason)
}
