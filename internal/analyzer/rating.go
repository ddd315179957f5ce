package analyzer

import "fmt"

// Rating is the qualitative strength label derived from a score.
type Rating string

const (
	RatingStrong   Rating = "Strong"
	RatingGood     Rating = "Good"
	RatingModerate Rating = "Moderate"
	RatingWeak     Rating = "Weak"
	// RatingVeryWeak is only produced by the weak-list override.
	RatingVeryWeak Rating = "Very Weak"
)

// Ratings lists every rating from strongest to weakest.
var Ratings = []Rating{RatingStrong, RatingGood, RatingModerate, RatingWeak, RatingVeryWeak}

// Acceptable reports whether the rating needs no remediation hints.
func (r Rating) Acceptable() bool {
	return r == RatingStrong || r == RatingGood
}

func (r Rating) String() string {
	return string(r)
}

// ParseRating converts a stored label back into a Rating.
func ParseRating(s string) (Rating, error) {
	for _, r := range Ratings {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rating %q", s)
}

// RateScore maps an additive score onto a rating.
func RateScore(score int) Rating {
	switch {
	case score >= MinScore:
		return RatingStrong
	case score >= 70:
		return RatingGood
	case score >= 40:
		return RatingModerate
	default:
		return RatingWeak
	}
}
