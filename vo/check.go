package vo

import "time"

type CheckStatus string

const (
	CheckStatusPass    CheckStatus = "pass"
	CheckStatusPartial CheckStatus = "partial"
	CheckStatusFail    CheckStatus = "fail"
	CheckStatusNA      CheckStatus = "na"
)

// CheckResult is one evaluator's verdict. Score is filled in during
// aggregation from the status and the check's configured weight.
type CheckResult struct {
	ID       string      `json:"id" yaml:"id"`
	Status   CheckStatus `json:"status" yaml:"status"`
	Score    float64     `json:"score" yaml:"score"`
	Evidence []string    `json:"evidence" yaml:"evidence"`
}

type CategoryResult struct {
	ID         string        `json:"id" yaml:"id"`
	Label      string        `json:"label" yaml:"label"`
	Checks     []CheckResult `json:"checks" yaml:"checks"`
	Score      float64       `json:"score" yaml:"score"`
	MaxScore   float64       `json:"maxScore" yaml:"maxscore"`
	Percentage float64       `json:"percentage" yaml:"percentage"`
}

type Scorecard struct {
	URL           string           `json:"url" yaml:"url"`
	FinalURL      string           `json:"finalUrl" yaml:"finalurl"`
	RubricVersion string           `json:"rubricVersion" yaml:"rubricversion"`
	TotalScore    int              `json:"totalScore" yaml:"totalscore"`
	Categories    []CategoryResult `json:"categories" yaml:"categories"`
	AnalyzedAt    time.Time        `json:"analyzedAt" yaml:"analyzedat"`
}
