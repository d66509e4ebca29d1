package webscore

import (
	"testing"

	"github.com/RobertCam/webscore/rubric"
	"github.com/RobertCam/webscore/vo"
	"github.com/stretchr/testify/assert"
)

const aggregateTestRubric = `
version: "test"
categories:
  - id: one
    label: One
    checks:
      - id: a
        label: A
        weight: 10
      - id: b
        label: B
        weight: 10
      - id: c
        label: C
        weight: 10
  - id: two
    label: Two
    checks:
      - id: d
        label: D
        weight: 5
allowNa:
  - c
phases:
  - name: partial
    checks: [a, b]
  - name: all
    checks: [c, d]
`

func loadAggregateRubric(t *testing.T) *rubric.Rubric {
	r, errLoad := rubric.Load([]byte(aggregateTestRubric))
	assert.NoError(t, errLoad)
	return r
}

func results(statuses map[string]vo.CheckStatus) map[string]vo.CheckResult {
	out := map[string]vo.CheckResult{}
	for id, status := range statuses {
		out[id] = vo.CheckResult{ID: id, Status: status, Evidence: []string{"test"}}
	}
	return out
}

func TestAggregateCategoryScores(t *testing.T) {
	r := loadAggregateRubric(t)
	active, errPhase := r.ActiveChecks("all")
	assert.NoError(t, errPhase)

	categories := Aggregate(r, active, results(map[string]vo.CheckStatus{
		"a": vo.CheckStatusPass,
		"b": vo.CheckStatusPartial,
		"c": vo.CheckStatusFail,
		"d": vo.CheckStatusPass,
	}))

	assert.Len(t, categories, 2)
	assert.Equal(t, 15.0, categories[0].Score)
	assert.Equal(t, 30.0, categories[0].MaxScore)
	assert.Equal(t, 50.0, categories[0].Percentage)
	assert.Equal(t, 5.0, categories[1].Score)
	assert.Equal(t, 100.0, categories[1].Percentage)
	assert.Equal(t, 57, TotalScore(categories))
}

func TestAggregateNAExcludedFromMaxScore(t *testing.T) {
	r := loadAggregateRubric(t)
	active, _ := r.ActiveChecks("all")

	categories := Aggregate(r, active, results(map[string]vo.CheckStatus{
		"a": vo.CheckStatusPass,
		"b": vo.CheckStatusPass,
		"c": vo.CheckStatusNA,
		"d": vo.CheckStatusFail,
	}))

	assert.Equal(t, 20.0, categories[0].Score)
	assert.Equal(t, 20.0, categories[0].MaxScore)
	assert.Equal(t, 100.0, categories[0].Percentage)
	assert.Equal(t, 80, TotalScore(categories))
}

func TestAggregateDisallowedNABecomesFail(t *testing.T) {
	r := loadAggregateRubric(t)
	active, _ := r.ActiveChecks("all")

	categories := Aggregate(r, active, results(map[string]vo.CheckStatus{
		"a": vo.CheckStatusNA,
		"b": vo.CheckStatusPass,
		"c": vo.CheckStatusPass,
		"d": vo.CheckStatusPass,
	}))

	assert.Equal(t, vo.CheckStatusFail, categories[0].Checks[0].Status)
	assert.Equal(t, 30.0, categories[0].MaxScore)
}

func TestAggregatePhaseGating(t *testing.T) {
	r := loadAggregateRubric(t)
	active, errPhase := r.ActiveChecks("partial")
	assert.NoError(t, errPhase)

	categories := Aggregate(r, active, results(map[string]vo.CheckStatus{
		"a": vo.CheckStatusPass,
		"b": vo.CheckStatusPass,
		"c": vo.CheckStatusPass,
		"d": vo.CheckStatusPass,
	}))

	// inactive checks are excluded even when evaluated
	assert.Len(t, categories[0].Checks, 2)
	assert.Equal(t, 20.0, categories[0].MaxScore)
	assert.Equal(t, 0.0, categories[1].MaxScore)
	assert.Equal(t, 0.0, categories[1].Percentage)
	assert.Equal(t, 100, TotalScore(categories))
}

func TestTotalScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, TotalScore(nil))
	assert.Equal(t, 0, TotalScore([]vo.CategoryResult{{}}))
}

func TestTotalScoreBounds(t *testing.T) {
	r := loadAggregateRubric(t)
	active, _ := r.ActiveChecks("all")
	allFail := Aggregate(r, active, results(map[string]vo.CheckStatus{
		"a": vo.CheckStatusFail,
		"b": vo.CheckStatusFail,
		"c": vo.CheckStatusFail,
		"d": vo.CheckStatusFail,
	}))
	assert.Equal(t, 0, TotalScore(allFail))

	allPass := Aggregate(r, active, results(map[string]vo.CheckStatus{
		"a": vo.CheckStatusPass,
		"b": vo.CheckStatusPass,
		"c": vo.CheckStatusPass,
		"d": vo.CheckStatusPass,
	}))
	assert.Equal(t, 100, TotalScore(allPass))
}
