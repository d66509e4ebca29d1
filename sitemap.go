package webscore

import (
	"encoding/xml"
	"io/ioutil"
	"net/url"
	"regexp"
	"time"

	"github.com/RobertCam/webscore/vo"
	"github.com/araddon/dateparse"
)

type sitemapEntry struct {
	LastMod string `xml:"lastmod"`
}

type sitemapDoc struct {
	URLs     []sitemapEntry `xml:"url"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

var lastModRe = regexp.MustCompile(`<lastmod>([^<]+)</lastmod>`)

// LookupSitemap fetches sitemap.xml for the page's origin and pulls the
// first <lastmod> it finds. Failures are a best-effort "absent" signal,
// never an error.
func LookupSitemap(finalURL string, timeout time.Duration) vo.SitemapInfo {
	info := vo.SitemapInfo{}
	u, errParse := url.Parse(finalURL)
	if errParse != nil || u.Host == "" {
		info.Detail = "could not resolve origin"
		return info
	}

	client := newHTTPClient(timeout)
	resp, errGet := client.Get(origin(u) + "/sitemap.xml")
	if errGet != nil {
		info.Detail = "sitemap.xml unreachable: " + errGet.Error()
		return info
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		info.Detail = "sitemap.xml not found"
		return info
	}
	body, errRead := ioutil.ReadAll(resp.Body)
	if errRead != nil {
		info.Detail = "sitemap.xml unreadable: " + errRead.Error()
		return info
	}

	info.Found = true
	raw := firstLastMod(body)
	if raw == "" {
		info.Detail = "sitemap.xml has no <lastmod>"
		return info
	}
	lastMod, errDate := dateparse.ParseAny(raw)
	if errDate != nil {
		info.Detail = "sitemap.xml lastmod unparsable: " + raw
		return info
	}
	info.LastMod = lastMod
	info.Detail = "sitemap.xml lastmod " + raw
	return info
}

func firstLastMod(body []byte) string {
	doc := sitemapDoc{}
	errUnmarshal := xml.Unmarshal(body, &doc)
	if errUnmarshal == nil {
		for _, entry := range doc.URLs {
			if entry.LastMod != "" {
				return entry.LastMod
			}
		}
		for _, entry := range doc.Sitemaps {
			if entry.LastMod != "" {
				return entry.LastMod
			}
		}
		return ""
	}
	// broken xml, fall back to a plain scan
	if m := lastModRe.FindSubmatch(body); m != nil {
		return string(m[1])
	}
	return ""
}
