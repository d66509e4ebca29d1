package checks

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

var profileDomains = []string{
	"facebook.com",
	"instagram.com",
	"linkedin.com",
	"twitter.com",
	"x.com",
	"youtube.com",
	"yelp.com",
	"tiktok.com",
	"pinterest.com",
	"google.com",
}

func brandConsistency(ctx *Context) vo.CheckResult {
	brand := ctx.Derived.Brand
	if brand == "" {
		return result("brand-consistency", vo.CheckStatusFail, "no brand could be derived")
	}
	sources := []struct {
		name  string
		value string
	}{
		{"title", ctx.Page.Title},
		{"h1", ctx.Page.PrimaryHeading},
		{"schema name", firstSchemaName(ctx.Page.StructuredData)},
	}
	nonEmpty := 0
	matches := []string{}
	for _, source := range sources {
		if source.value == "" {
			continue
		}
		nonEmpty++
		if containsFold(source.value, brand) {
			matches = append(matches, source.name)
		}
	}
	evidence := fmt.Sprintf("brand %q found in %d of %d non-empty source(s): %s",
		brand, len(matches), nonEmpty, strings.Join(matches, ", "))
	switch {
	case nonEmpty >= 2 && len(matches) == nonEmpty:
		return result("brand-consistency", vo.CheckStatusPass, evidence)
	case len(matches) >= 1:
		return result("brand-consistency", vo.CheckStatusPartial, evidence)
	default:
		return result("brand-consistency", vo.CheckStatusFail, evidence)
	}
}

func firstSchemaName(items []map[string]interface{}) string {
	for _, item := range items {
		if name, ok := item["name"].(string); ok && name != "" {
			return name
		}
	}
	return ""
}

func sameAsProfiles(ctx *Context) vo.CheckResult {
	links := sameAsLinks(ctx.Page.StructuredData)
	if len(links) == 0 {
		return result("sameas-profiles", vo.CheckStatusFail, "no sameAs links in structured data")
	}
	known := []string{}
	for _, link := range links {
		if onProfileDomain(link) {
			known = append(known, link)
		}
	}
	evidence := fmt.Sprintf("%d of %d sameAs link(s) on known profile domains: %s",
		len(known), len(links), strings.Join(known, ", "))
	switch {
	case len(known) >= 2:
		return result("sameas-profiles", vo.CheckStatusPass, evidence)
	case len(known) == 1:
		return result("sameas-profiles", vo.CheckStatusPartial, evidence)
	default:
		return result("sameas-profiles", vo.CheckStatusFail, evidence)
	}
}

func sameAsLinks(items []map[string]interface{}) []string {
	links := []string{}
	for _, item := range items {
		switch v := item["sameAs"].(type) {
		case string:
			links = append(links, v)
		case []interface{}:
			for _, entry := range v {
				if s, ok := entry.(string); ok {
					links = append(links, s)
				}
			}
		}
	}
	return links
}

func onProfileDomain(link string) bool {
	u, errParse := url.Parse(link)
	if errParse != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, domain := range profileDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func logoPresence(ctx *Context) vo.CheckResult {
	schemaLogo := false
	for _, item := range ctx.Page.StructuredData {
		if _, ok := item["logo"]; ok {
			schemaLogo = true
			break
		}
	}
	visibleLogo := ""
	for _, img := range ctx.Page.Images {
		if containsFold(img.Alt, "logo") || containsFold(img.Src, "logo") {
			visibleLogo = img.Src
			break
		}
	}

	switch {
	case schemaLogo && visibleLogo != "":
		return result("logo-presence", vo.CheckStatusPass,
			"logo declared in structured data and visible on page: "+snippet(visibleLogo))
	case schemaLogo:
		return result("logo-presence", vo.CheckStatusPartial,
			"logo declared in structured data but not found among page images")
	case visibleLogo != "":
		return result("logo-presence", vo.CheckStatusPartial,
			"logo image on page but not declared in structured data: "+snippet(visibleLogo))
	default:
		return result("logo-presence", vo.CheckStatusFail,
			"no logo in structured data or page images")
	}
}

func brandedAltText(ctx *Context) vo.CheckResult {
	images := ctx.Page.Images
	if len(images) == 0 {
		return result("branded-alt-text", vo.CheckStatusPass,
			fractionEvidence("images", 0, 0))
	}
	brand := ctx.Derived.Brand
	locality := ctx.Derived.Locality
	branded := 0
	for _, img := range images {
		if containsFold(img.Alt, brand) || containsFold(img.Alt, locality) {
			branded++
		}
	}
	evidence := fractionEvidence("image alt texts naming brand or locality", branded, len(images))
	switch {
	case percent(branded, len(images)) >= 50:
		return result("branded-alt-text", vo.CheckStatusPass, evidence)
	case branded > 0:
		return result("branded-alt-text", vo.CheckStatusPartial, evidence)
	default:
		return result("branded-alt-text", vo.CheckStatusFail, evidence)
	}
}
