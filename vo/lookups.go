package vo

import "time"

// RobotsPolicy is the interpreted robots.txt for one page path.
// An unreachable or missing robots.txt yields Found=false, which callers
// must treat as allow.
type RobotsPolicy struct {
	Found         bool
	Blocked       bool
	GPTBotBlocked bool
	Detail        string
}

// SitemapInfo is the interpreted sitemap.xml for one origin. LastMod is
// zero when the sitemap carries no parseable <lastmod>.
type SitemapInfo struct {
	Found   bool
	LastMod time.Time
	Detail  string
}
