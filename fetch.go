package webscore

import (
	"errors"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/RobertCam/webscore/vo"
	"golang.org/x/net/html/charset"
)

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrNoBody     = errors.New("no body")
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Dial: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).Dial,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}
}

// ValidateURL checks the inbound analysis URL before any network call.
func ValidateURL(targetURL string) (*url.URL, error) {
	u, errParse := url.Parse(targetURL)
	if errParse != nil {
		return nil, ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}
	return u, nil
}

// Fetch retrieves the raw page. A non-success status code is still a
// result, the page gets scored against what it returned. Only transport
// failures are errors.
func Fetch(client *http.Client, targetURL, agent string) (vo.FetchResult, error) {
	result := vo.FetchResult{FinalURL: targetURL}

	req, errRequest := http.NewRequest("GET", targetURL, nil)
	if errRequest != nil {
		return result, errRequest
	}
	req.Header.Set("User-Agent", agent)

	resp, errGet := client.Do(req)
	if errGet != nil {
		return result, errGet
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.FinalURL = resp.Request.URL.String()
	if resp.Body == nil {
		return result, ErrNoBody
	}

	bodyBytes, errRead := ioutil.ReadAll(resp.Body)
	if errRead != nil {
		return result, errRead
	}
	result.HTML = decodeBody(bodyBytes, resp.Header.Get("Content-Type"))
	return result, nil
}

// decodeBody converts a response body to UTF-8, falling back to the raw
// bytes when decoding fails.
func decodeBody(data []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, errDecode := enc.NewDecoder().Bytes(data)
	if errDecode != nil {
		return string(data)
	}
	return string(decoded)
}
