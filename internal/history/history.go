// Package history records check outcomes without the checked password.
package history

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/pwscore/internal/analyzer"
	"github.com/verte-zerg/pwscore/internal/model"
	"github.com/verte-zerg/pwscore/internal/store"
)

// Recorder writes outcomes to the store. A nil Recorder discards them.
type Recorder struct {
	store *store.Store
	now   func() time.Time
}

// NewRecorder returns a Recorder backed by st.
func NewRecorder(st *store.Store) *Recorder {
	return &Recorder{store: st, now: time.Now}
}

// Record stores the outcome of analyzing password. Only its length is kept.
func (r *Recorder) Record(ctx context.Context, password string, res analyzer.Result) error {
	if r == nil || r.store == nil {
		return nil
	}
	_, err := r.store.InsertCheck(ctx, model.CheckRecord{
		CheckedAt:     r.now(),
		Length:        utf8.RuneCountInString(password),
		Score:         res.Score,
		Rating:        res.Rating.String(),
		FeedbackCount: len(res.Feedback),
	})
	return err
}
