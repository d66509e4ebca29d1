package webscore

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const robotsTestTimeout = 2 * time.Second

func robotsServer(body string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestLookupRobotsAllows(t *testing.T) {
	server := robotsServer("User-agent: *\nDisallow: /private/\n", 200)
	defer server.Close()

	policy := LookupRobots(server.URL+"/menu", "webscore/1.0", robotsTestTimeout)
	assert.True(t, policy.Found)
	assert.False(t, policy.Blocked)
	assert.False(t, policy.GPTBotBlocked)
}

func TestLookupRobotsBlocks(t *testing.T) {
	server := robotsServer("User-agent: *\nDisallow: /private/\n", 200)
	defer server.Close()

	policy := LookupRobots(server.URL+"/private/page", "webscore/1.0", robotsTestTimeout)
	assert.True(t, policy.Found)
	assert.True(t, policy.Blocked)
	assert.Contains(t, policy.Detail, "disallows")
}

func TestLookupRobotsGPTBotStanza(t *testing.T) {
	server := robotsServer("User-agent: GPTBot\nDisallow: /\n\nUser-agent: *\nAllow: /\n", 200)
	defer server.Close()

	policy := LookupRobots(server.URL+"/", "webscore/1.0", robotsTestTimeout)
	assert.True(t, policy.Found)
	assert.False(t, policy.Blocked)
	assert.True(t, policy.GPTBotBlocked)
}

func TestLookupRobotsMissingDefaultsToAllow(t *testing.T) {
	server := robotsServer("", 404)
	defer server.Close()

	policy := LookupRobots(server.URL+"/", "webscore/1.0", robotsTestTimeout)
	assert.False(t, policy.Found)
	assert.False(t, policy.Blocked)
	assert.Contains(t, policy.Detail, "defaulting to allow")
}

func TestLookupRobotsUnreachableDefaultsToAllow(t *testing.T) {
	server := robotsServer("", 200)
	server.Close()

	policy := LookupRobots(server.URL+"/", "webscore/1.0", robotsTestTimeout)
	assert.False(t, policy.Found)
	assert.False(t, policy.Blocked)
	assert.Contains(t, policy.Detail, "unreachable")
}

func TestLookupRobotsBadURL(t *testing.T) {
	policy := LookupRobots("not a url", "webscore/1.0", robotsTestTimeout)
	assert.False(t, policy.Found)
	assert.False(t, policy.Blocked)
}
