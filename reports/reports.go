package reports

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/RobertCam/webscore/rubric"
	"github.com/RobertCam/webscore/vo"
)

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}

// WriteScorecard renders a full scorecard as a plain text report: the total,
// then every category with its checks and their evidence.
func WriteScorecard(w io.Writer, scorecard vo.Scorecard) {
	printh, println, printsep := printers(w)
	println("webscore report for", scorecard.URL)
	if scorecard.FinalURL != "" && scorecard.FinalURL != scorecard.URL {
		println("final url:", scorecard.FinalURL)
	}
	println("rubric:", scorecard.RubricVersion, "	analyzed:", scorecard.AnalyzedAt.Format(time.RFC3339))
	printsep()
	println("total score:", scorecard.TotalScore, "/ 100")

	for _, cat := range scorecard.Categories {
		printh(fmt.Sprintf("%s	%.1f / %.1f	(%.1f %%)", cat.Label, cat.Score, cat.MaxScore, cat.Percentage))
		for _, check := range cat.Checks {
			println(fmt.Sprintf("%-8s%s", check.Status, check.ID))
			for _, evidence := range check.Evidence {
				println("	", evidence)
			}
		}
	}
}

type finding struct {
	id       string
	category string
	status   vo.CheckStatus
	lost     float64
	evidence []string
}

// WriteFindings renders only the checks that lost points, worst first. This
// is the short form for someone who wants to know what to fix.
func WriteFindings(w io.Writer, r *rubric.Rubric, scorecard vo.Scorecard) {
	printh, println, _ := printers(w)
	weights := checkWeights(r)
	findings := []finding{}
	for _, cat := range scorecard.Categories {
		for _, check := range cat.Checks {
			if check.Status == vo.CheckStatusPass {
				continue
			}
			lost := 0.0
			if check.Status != vo.CheckStatusNA {
				lost = weights[check.ID] - check.Score
			}
			findings = append(findings, finding{
				id:       check.ID,
				category: cat.ID,
				status:   check.Status,
				lost:     lost,
				evidence: check.Evidence,
			})
		}
	}
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].lost != findings[j].lost {
			return findings[i].lost > findings[j].lost
		}
		return findings[i].id < findings[j].id
	})

	printh("findings for", scorecard.URL, "	score", scorecard.TotalScore, "/ 100")
	if len(findings) == 0 {
		println("nothing to fix, every check passed")
		return
	}
	for _, f := range findings {
		println(fmt.Sprintf("%-8s%s	(%s, %.1f point(s) lost)", f.status, f.id, f.category, f.lost))
		for _, evidence := range f.evidence {
			println("	", evidence)
		}
	}
}

func checkWeights(r *rubric.Rubric) map[string]float64 {
	weights := map[string]float64{}
	if r == nil {
		return weights
	}
	for _, cat := range r.Categories {
		for _, check := range cat.Checks {
			weights[check.ID] = check.Weight
		}
	}
	return weights
}
