package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/pwscore/internal/analyzer"
	"github.com/verte-zerg/pwscore/internal/model"
	"github.com/verte-zerg/pwscore/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Checks  []model.CheckRecord
	Ratings []model.RatingAggregate
	Window  int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	checks, err := st.ListChecks(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	aggs, err := st.RatingCounts(ctx, checkIDs(checks))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Checks:  checks,
		Ratings: orderRatings(aggs),
		Window:  cfg.Window,
	}, nil
}

// WriteReport renders the summary, rating table and trend.
func WriteReport(w io.Writer, report Report) error {
	if err := RenderSummary(w, report.Checks); err != nil {
		return err
	}
	if err := RenderRatingTable(w, report.Ratings); err != nil {
		return err
	}
	return RenderTrend(w, report.Checks, report.Window)
}

func checkIDs(checks []model.CheckRecord) []int64 {
	ids := make([]int64, len(checks))
	for i, c := range checks {
		ids[i] = c.ID
	}
	return ids
}

// orderRatings returns one aggregate per known rating, strongest first.
func orderRatings(aggs []model.RatingAggregate) []model.RatingAggregate {
	byRating := make(map[string]model.RatingAggregate, len(aggs))
	for _, agg := range aggs {
		byRating[agg.Rating] = agg
	}
	out := make([]model.RatingAggregate, 0, len(analyzer.Ratings))
	for _, r := range analyzer.Ratings {
		agg, ok := byRating[r.String()]
		if !ok {
			agg = model.RatingAggregate{Rating: r.String()}
		}
		out = append(out, agg)
	}
	return out
}
