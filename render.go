package webscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/RobertCam/webscore/vo"
)

// ErrRendererNotConfigured is returned when no renderer endpoint is set.
// Checks that need rendered content degrade to their documented outcome.
var ErrRendererNotConfigured = errors.New("renderer not configured")

// RendererClient talks to the external JS-rendering collaborator: a GET
// with the target URL as a query parameter, an optional shared-secret
// header, and a JSON body of {"finalUrl": ..., "html": ...} on success.
type RendererClient struct {
	endpoint string
	token    string
	agent    string
	client   *http.Client
}

func NewRendererClient(endpoint, token, agent string, timeout time.Duration) *RendererClient {
	return &RendererClient{
		endpoint: endpoint,
		token:    token,
		agent:    agent,
		client:   newHTTPClient(timeout),
	}
}

type renderResponse struct {
	FinalURL string `json:"finalUrl"`
	HTML     string `json:"html"`
}

func (rc *RendererClient) Render(targetURL string) (vo.FetchResult, error) {
	result := vo.FetchResult{}
	if rc == nil || rc.endpoint == "" {
		return result, ErrRendererNotConfigured
	}

	renderURL := rc.endpoint + "?url=" + url.QueryEscape(targetURL)
	req, errRequest := http.NewRequest("GET", renderURL, nil)
	if errRequest != nil {
		return result, errRequest
	}
	req.Header.Set("User-Agent", rc.agent)
	if rc.token != "" {
		req.Header.Set("X-Render-Token", rc.token)
	}

	resp, errGet := rc.client.Do(req)
	if errGet != nil {
		return result, errGet
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	body := renderResponse{}
	errDecode := json.NewDecoder(resp.Body).Decode(&body)
	if errDecode != nil {
		return result, fmt.Errorf("renderer response malformed: %v", errDecode)
	}
	if body.HTML == "" {
		return result, errors.New("renderer response missing html")
	}

	result.HTML = body.HTML
	result.FinalURL = body.FinalURL
	if result.FinalURL == "" {
		result.FinalURL = targetURL
	}
	result.StatusCode = http.StatusOK
	return result, nil
}
