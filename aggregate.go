package webscore

import (
	"math"

	"github.com/RobertCam/webscore/rubric"
	"github.com/RobertCam/webscore/vo"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Aggregate folds check results into per-category scores. Only active
// checks contribute; an na outcome scores zero and drops out of maxScore.
// An na from a check the rubric does not track as na-capable is demoted to
// a fail, evaluators may not invent untracked na outcomes.
func Aggregate(
	r *rubric.Rubric,
	active map[string]bool,
	results map[string]vo.CheckResult,
) []vo.CategoryResult {
	categories := []vo.CategoryResult{}
	for _, cat := range r.Categories {
		catResult := vo.CategoryResult{
			ID:     cat.ID,
			Label:  cat.Label,
			Checks: []vo.CheckResult{},
		}
		for _, check := range cat.Checks {
			if !active[check.ID] {
				continue
			}
			res, ok := results[check.ID]
			if !ok {
				continue
			}
			if res.Status == vo.CheckStatusNA && !r.AllowsNA(check.ID) {
				res.Status = vo.CheckStatusFail
				res.Evidence = append(res.Evidence, "status na is not tracked for this check")
			}
			res.Score = rubric.Score(res.Status, check.Weight)
			catResult.Checks = append(catResult.Checks, res)
			catResult.Score += res.Score
			if res.Status != vo.CheckStatusNA {
				catResult.MaxScore += check.Weight
			}
		}
		if catResult.MaxScore > 0 {
			catResult.Percentage = round2(100 * catResult.Score / catResult.MaxScore)
		}
		categories = append(categories, catResult)
	}
	return categories
}

// TotalScore normalizes the category results into a single 0..100 integer.
func TotalScore(categories []vo.CategoryResult) int {
	score := 0.0
	maxScore := 0.0
	for _, cat := range categories {
		score += cat.Score
		maxScore += cat.MaxScore
	}
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(100 * score / maxScore))
}
