package webscore

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/RobertCam/webscore/checks"
	"github.com/RobertCam/webscore/config"
	"github.com/RobertCam/webscore/rubric"
	"github.com/RobertCam/webscore/vo"
)

// Analyzer runs one stateless scoring pipeline per request. The rubric and
// configuration are fixed at construction, nothing is shared between
// concurrent analyses.
type Analyzer struct {
	rubric      *rubric.Rubric
	active      map[string]bool
	renderer    *RendererClient
	fetchClient *http.Client

	agent         string
	lookupTimeout time.Duration
	concurrency   int

	// optional, set by the service so page status codes show up in /metrics
	metrics *serviceMetrics
}

func NewAnalyzer(conf *config.Config, r *rubric.Rubric) (*Analyzer, error) {
	errCoverage := validateCoverage(r)
	if errCoverage != nil {
		return nil, errCoverage
	}

	phase := conf.Phase
	if phase == "" {
		phase = r.FinalPhase()
	}
	active, errPhase := r.ActiveChecks(phase)
	if errPhase != nil {
		return nil, errPhase
	}

	concurrency := conf.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	return &Analyzer{
		rubric:        r,
		active:        active,
		renderer:      NewRendererClient(conf.Renderer, conf.RenderToken, conf.Agent, conf.RenderTimeout()),
		fetchClient:   newHTTPClient(conf.FetchTimeout()),
		agent:         conf.Agent,
		lookupTimeout: conf.LookupTimeout(),
		concurrency:   concurrency,
	}, nil
}

// Rubric exposes the scoring table the analyzer was built with, report
// renderers need it for check weights.
func (a *Analyzer) Rubric() *rubric.Rubric {
	return a.rubric
}

// validateCoverage fails fast when the rubric and the evaluator registry
// disagree, a misconfiguration is a startup error, not a per-request one.
func validateCoverage(r *rubric.Rubric) error {
	registered := map[string]bool{}
	for _, id := range checks.IDs() {
		registered[id] = true
	}
	rubricIDs := map[string]bool{}
	for _, id := range r.CheckIDs() {
		rubricIDs[id] = true
		if !registered[id] {
			return fmt.Errorf("rubric references unregistered check %q", id)
		}
	}
	missing := []string{}
	for id := range registered {
		if !rubricIDs[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("evaluators not covered by the rubric: %v", missing)
	}
	return nil
}

// Analyze scores one page. Only an invalid URL or an unreachable raw fetch
// are fatal; everything below that tier degrades into check outcomes.
func (a *Analyzer) Analyze(targetURL string) (vo.Scorecard, error) {
	scorecard := vo.Scorecard{URL: targetURL}

	_, errURL := ValidateURL(targetURL)
	if errURL != nil {
		return scorecard, errURL
	}

	// rendered fetch runs while the raw page is fetched and parsed
	type renderOutcome struct {
		result vo.FetchResult
		err    error
	}
	chanRender := make(chan renderOutcome, 1)
	go func() {
		rendered, errRender := a.renderer.Render(targetURL)
		chanRender <- renderOutcome{result: rendered, err: errRender}
	}()

	raw, errFetch := Fetch(a.fetchClient, targetURL, a.agent)
	if errFetch != nil {
		return scorecard, fmt.Errorf("could not fetch %s: %v", targetURL, errFetch)
	}
	if a.metrics != nil {
		a.metrics.statusCounter.WithLabelValues(strconv.Itoa(raw.StatusCode)).Inc()
	}

	page := Parse(raw.HTML)
	derived := Derive(page)

	ctx := &checks.Context{
		Raw:     raw,
		Page:    page,
		Derived: derived,
		Now:     time.Now(),
	}
	ctx.Robots = memoizeRobots(raw.FinalURL, a.agent, a.lookupTimeout)
	ctx.Sitemap = memoizeSitemap(raw.FinalURL, a.lookupTimeout)

	render := <-chanRender
	if render.err != nil {
		ctx.RenderError = render.err.Error()
	} else {
		renderedPage := Parse(render.result.HTML)
		ctx.Rendered = &render.result
		ctx.RenderedPage = &renderedPage
	}

	results := a.evaluate(ctx)
	categories := Aggregate(a.rubric, a.active, results)

	scorecard.FinalURL = raw.FinalURL
	scorecard.RubricVersion = a.rubric.Version
	scorecard.Categories = categories
	scorecard.TotalScore = TotalScore(categories)
	scorecard.AnalyzedAt = ctx.Now
	return scorecard, nil
}

// evaluate runs every active check concurrently. Evaluators are pure over
// the context, so the only coordination needed is the result slot each
// goroutine owns.
func (a *Analyzer) evaluate(ctx *checks.Context) map[string]vo.CheckResult {
	ids := []string{}
	for _, cat := range a.rubric.Categories {
		for _, check := range cat.Checks {
			if a.active[check.ID] {
				ids = append(ids, check.ID)
			}
		}
	}

	slots := make([]vo.CheckResult, len(ids))
	limiter := make(chan struct{}, a.concurrency)
	wg := sync.WaitGroup{}
	for i, id := range ids {
		evaluator, ok := checks.Get(id)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(i int, evaluator checks.Evaluator) {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()
			slots[i] = evaluator(ctx)
		}(i, evaluator)
	}
	wg.Wait()

	results := make(map[string]vo.CheckResult, len(ids))
	for _, res := range slots {
		if res.ID != "" {
			results[res.ID] = res
		}
	}
	return results
}

func memoizeRobots(finalURL, agent string, timeout time.Duration) func() vo.RobotsPolicy {
	once := sync.Once{}
	var policy vo.RobotsPolicy
	return func() vo.RobotsPolicy {
		once.Do(func() {
			policy = LookupRobots(finalURL, agent, timeout)
		})
		return policy
	}
}

func memoizeSitemap(finalURL string, timeout time.Duration) func() vo.SitemapInfo {
	once := sync.Once{}
	var info vo.SitemapInfo
	return func() vo.SitemapInfo {
		once.Do(func() {
			info = LookupSitemap(finalURL, timeout)
		})
		return info
	}
}
