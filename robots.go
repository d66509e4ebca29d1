package webscore

import (
	"io/ioutil"
	"net/url"
	"regexp"
	"time"

	"github.com/RobertCam/webscore/vo"
	"github.com/temoto/robotstxt"
)

var gptBotStanzaRe = regexp.MustCompile(`(?is)user-agent:\s*gptbot.*?disallow:\s*\S`)

func origin(u *url.URL) string {
	o := u.Scheme + "://" + u.Host
	return o
}

// LookupRobots fetches and interprets robots.txt for the page's origin.
// Any failure degrades to default-allow: the absence of a robots file must
// never penalize the page.
func LookupRobots(finalURL, agent string, timeout time.Duration) vo.RobotsPolicy {
	policy := vo.RobotsPolicy{}
	u, errParse := url.Parse(finalURL)
	if errParse != nil || u.Host == "" {
		policy.Detail = "could not resolve origin, defaulting to allow"
		return policy
	}

	client := newHTTPClient(timeout)
	resp, errGet := client.Get(origin(u) + "/robots.txt")
	if errGet != nil {
		policy.Detail = "robots.txt unreachable: " + errGet.Error()
		return policy
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		policy.Detail = "robots.txt not found, defaulting to allow"
		return policy
	}

	body, errRead := ioutil.ReadAll(resp.Body)
	if errRead != nil {
		policy.Detail = "robots.txt unreadable: " + errRead.Error()
		return policy
	}
	data, errRobots := robotstxt.FromBytes(body)
	if errRobots != nil {
		policy.Detail = "robots.txt unparsable, defaulting to allow"
		return policy
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	policy.Found = true
	policy.Blocked = !data.FindGroup(agent).Test(path)

	// a GPTBot stanza counts as blocking when it carries any Disallow line
	policy.GPTBotBlocked = gptBotStanzaRe.MatchString(string(body))
	if policy.Blocked {
		policy.Detail = "robots.txt disallows " + path
	} else {
		policy.Detail = "robots.txt allows " + path
	}
	return policy
}
