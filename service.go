package webscore

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/RobertCam/webscore/config"
	"github.com/RobertCam/webscore/reports"
	"github.com/RobertCam/webscore/rubric"
	"github.com/RobertCam/webscore/vo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service exposes the analyzer over HTTP.
type Service struct {
	Analyzer *Analyzer
	metrics  *serviceMetrics
}

func NewService(conf *config.Config) (s *Service, err error) {
	r := rubric.Default()
	if conf.RubricFile != "" {
		r, err = rubric.LoadFile(conf.RubricFile)
		if err != nil {
			return nil, err
		}
	}
	analyzer, errAnalyzer := NewAnalyzer(conf, r)
	if errAnalyzer != nil {
		return nil, errAnalyzer
	}
	s = &Service{
		Analyzer: analyzer,
		metrics:  setupMetrics(),
	}
	analyzer.metrics = s.metrics
	return s, nil
}

type AnalyzeRequest struct {
	URL string `json:"url"`
}

type AnalyzeResponse struct {
	Success   bool          `json:"success"`
	Scorecard *vo.Scorecard `json:"scorecard,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/report", s.handleReport)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Service) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	targetURL := r.URL.Query().Get("url")
	if r.Method == http.MethodPost {
		req := AnalyzeRequest{}
		errDecode := json.NewDecoder(r.Body).Decode(&req)
		if errDecode != nil {
			writeAnalyzeResponse(w, http.StatusBadRequest, AnalyzeResponse{
				Error: "request body must be json with a url field",
			})
			return
		}
		targetURL = req.URL
	}
	if targetURL == "" {
		writeAnalyzeResponse(w, http.StatusBadRequest, AnalyzeResponse{
			Error: "url is required",
		})
		return
	}

	start := time.Now()
	scorecard, errAnalyze := s.Analyzer.Analyze(targetURL)
	if errAnalyze != nil {
		outcome := "fetch-error"
		status := http.StatusBadGateway
		if errors.Is(errAnalyze, ErrInvalidURL) {
			outcome = "invalid-url"
			status = http.StatusBadRequest
		}
		s.metrics.analysisCounter.WithLabelValues(outcome).Inc()
		s.metrics.durationSummary.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		log.Println("analysis failed:", targetURL, errAnalyze)
		writeAnalyzeResponse(w, status, AnalyzeResponse{Error: errAnalyze.Error()})
		return
	}

	s.metrics.analysisCounter.WithLabelValues("ok").Inc()
	s.metrics.durationSummary.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	s.metrics.scoreSummary.Observe(float64(scorecard.TotalScore))
	log.Println("analyzed", targetURL, "score", scorecard.TotalScore)
	writeAnalyzeResponse(w, http.StatusOK, AnalyzeResponse{
		Success:   true,
		Scorecard: &scorecard,
	})
}

// handleReport serves the plain text rendition of a scorecard, the full
// report by default or only the failing checks with ?view=findings.
func (s *Service) handleReport(w http.ResponseWriter, r *http.Request) {
	targetURL := r.URL.Query().Get("url")
	if targetURL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}
	scorecard, errAnalyze := s.Analyzer.Analyze(targetURL)
	if errAnalyze != nil {
		status := http.StatusBadGateway
		if errors.Is(errAnalyze, ErrInvalidURL) {
			status = http.StatusBadRequest
		}
		http.Error(w, errAnalyze.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if r.URL.Query().Get("view") == "findings" {
		reports.WriteFindings(w, s.Analyzer.Rubric(), scorecard)
		return
	}
	reports.WriteScorecard(w, scorecard)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeAnalyzeResponse(w http.ResponseWriter, status int, resp AnalyzeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
