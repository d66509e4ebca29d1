package webscore

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) (*Service, *httptest.Server) {
	now := time.Now()
	pages := pageServer(t, now)
	renderer := rendererStub(t, now, pages.URL)

	service, errNew := NewService(testConfig(renderer.URL))
	assert.Nil(t, errNew)
	return service, pages
}

func postAnalyze(t *testing.T, handler http.Handler, body string) (int, AnalyzeResponse) {
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := AnalyzeResponse{}
	errDecode := json.NewDecoder(rec.Body).Decode(&resp)
	assert.Nil(t, errDecode)
	return rec.Code, resp
}

func TestServiceAnalyzePost(t *testing.T) {
	service, pages := newTestService(t)
	code, resp := postAnalyze(t, service.Handler(), `{"url":"`+pages.URL+`/"}`)
	assert.Equal(t, 200, code)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Scorecard)
	assert.True(t, resp.Scorecard.TotalScore > 0)
}

func TestServiceAnalyzeGet(t *testing.T) {
	service, pages := newTestService(t)
	req := httptest.NewRequest("GET", "/analyze?url="+pages.URL+"/", nil)
	rec := httptest.NewRecorder()
	service.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
}

func TestServiceAnalyzeInvalidURL(t *testing.T) {
	service, _ := newTestService(t)
	code, resp := postAnalyze(t, service.Handler(), `{"url":"not-a-url"}`)
	assert.Equal(t, 400, code)
	assert.False(t, resp.Success)
	assert.NotEqual(t, "", resp.Error)
	assert.Nil(t, resp.Scorecard)
}

func TestServiceAnalyzeMissingURL(t *testing.T) {
	service, _ := newTestService(t)
	code, resp := postAnalyze(t, service.Handler(), `{}`)
	assert.Equal(t, 400, code)
	assert.False(t, resp.Success)
}

func TestServiceAnalyzeBadBody(t *testing.T) {
	service, _ := newTestService(t)
	code, _ := postAnalyze(t, service.Handler(), `not json`)
	assert.Equal(t, 400, code)
}

func TestServiceAnalyzeUnreachablePage(t *testing.T) {
	service, _ := newTestService(t)
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	code, resp := postAnalyze(t, service.Handler(), `{"url":"`+dead.URL+`/"}`)
	assert.Equal(t, 502, code)
	assert.False(t, resp.Success)
}

func TestServiceReport(t *testing.T) {
	service, pages := newTestService(t)
	req := httptest.NewRequest("GET", "/report?url="+pages.URL+"/", nil)
	rec := httptest.NewRecorder()
	service.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "webscore report for")
	assert.Contains(t, rec.Body.String(), "total score:")
}

func TestServiceReportFindings(t *testing.T) {
	service, pages := newTestService(t)
	req := httptest.NewRequest("GET", "/report?url="+pages.URL+"/&view=findings", nil)
	rec := httptest.NewRecorder()
	service.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "findings for")
}

func TestServiceReportMissingURL(t *testing.T) {
	service, _ := newTestService(t)
	req := httptest.NewRequest("GET", "/report", nil)
	rec := httptest.NewRecorder()
	service.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 400, rec.Code)
}

func TestServiceHealth(t *testing.T) {
	service, _ := newTestService(t)
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	service.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestServiceMetricsEndpoint(t *testing.T) {
	service, _ := newTestService(t)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	service.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
}
