// Package analyzer scores password strength with length, character-class and
// weak-list rules.
package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/pwscore/internal/weaklist"
)

const (
	// MinLength is the length that earns the full length bonus.
	MinLength = 12
	// MinScore is the lowest score rated Strong.
	MinScore = 100
	// MaxScore is the highest reachable score.
	MaxScore = lengthFull + 4*classPoints

	shortLength   = 8
	lengthFull    = 30
	lengthPartial = 15
	classPoints   = 20
)

const specialChars = "!@#$%^&*()_+=-{}[]|\\:;\"'<>,.?/`~"

const (
	msgTooShort  = "Critical: Password is too short (less than 8 characters)."
	msgLengthFmt = "Weak: Increase length beyond %d characters."
	msgUpper     = "Weak: Add uppercase letters (A-Z)."
	msgLower     = "Weak: Add lowercase letters (a-z)."
	msgDigit     = "Weak: Add numbers (0-9)."
	msgSpecial   = "Weak: Add special characters (e.g., !, @, #)."
	// MsgWeakList is the only feedback line of a listed password.
	MsgWeakList = "CRITICAL: Password is on the common/breached password list!"
)

// Result is the outcome of a single analysis.
type Result struct {
	Score    int
	Feedback []string
	Rating   Rating
}

// Analyzer scores passwords against a fixed weak-password list.
type Analyzer struct {
	weak *weaklist.List
}

// New returns an Analyzer using the given list. A nil list matches nothing.
func New(weak *weaklist.List) *Analyzer {
	return &Analyzer{weak: weak}
}

// Analyze scores password with the embedded weak-password list.
func Analyze(password string) Result {
	return New(weaklist.Default()).Analyze(password)
}

type classRule struct {
	match    func(rune) bool
	feedback string
}

var classRules = []classRule{
	{match: func(r rune) bool { return r >= 'A' && r <= 'Z' }, feedback: msgUpper},
	{match: func(r rune) bool { return r >= 'a' && r <= 'z' }, feedback: msgLower},
	{match: func(r rune) bool { return r >= '0' && r <= '9' }, feedback: msgDigit},
	{match: func(r rune) bool { return strings.ContainsRune(specialChars, r) }, feedback: msgSpecial},
}

// Analyze scores password. It never fails and keeps no state between calls.
func (a *Analyzer) Analyze(password string) Result {
	score := 0
	var feedback []string

	length := utf8.RuneCountInString(password)
	switch {
	case length >= MinLength:
		score += lengthFull
	case length >= shortLength:
		score += lengthPartial
		feedback = append(feedback, fmt.Sprintf(msgLengthFmt, length))
	default:
		feedback = append(feedback, msgTooShort)
	}

	for _, rule := range classRules {
		if strings.IndexFunc(password, rule.match) >= 0 {
			score += classPoints
			continue
		}
		feedback = append(feedback, rule.feedback)
	}

	// The weak list overrides everything computed above.
	if a.weak.Contains(password) {
		return Result{
			Score:    0,
			Feedback: []string{MsgWeakList},
			Rating:   RatingVeryWeak,
		}
	}

	return Result{
		Score:    score,
		Feedback: feedback,
		Rating:   RateScore(score),
	}
}
