// Package matcher ranks candidates against a job posting.
package matcher

import (
	"sort"
	"strings"
	"unicode"

	"github.com/khrees2412/talentdesk/pkg/models"
)

// Match is one ranked candidate.
type Match struct {
	User  models.UserProfile
	Score float64
	// Hits are the requirement keywords found in the profile.
	Hits []string
}

// CalculateMatchScore calculates how well a candidate fits a job.
// Returns a score between 0.0 and 1.0 and the requirement keywords it hit.
func CalculateMatchScore(job models.Job, up models.UserProfile) (float64, []string) {
	words := tokenSet(strings.Join([]string{
		up.Profile.JobRole, up.Profile.Bio, up.Profile.Experience, up.Profile.Education,
	}, " "))

	// Factor 1: requirement keywords (50% weight)
	reqScore, hits := matchRequirements(job, words)
	score := reqScore * 0.5

	// Factor 2: job name against the candidate's role (20% weight)
	score += matchTitle(job, up.Profile.JobRole) * 0.2

	// Factor 3: stored fitment score (30% weight)
	fit := up.Profile.Score
	if fit < 0 {
		fit = 0
	}
	if fit > 100 {
		fit = 100
	}
	score += float64(fit) / 100 * 0.3

	return score, hits
}

// Rank scores every candidate and sorts best first. Ties keep name order.
func Rank(job models.Job, users []models.UserProfile) []Match {
	out := make([]Match, 0, len(users))
	for _, up := range users {
		score, hits := CalculateMatchScore(job, up)
		out = append(out, Match{User: up, Score: score, Hits: hits})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return strings.ToLower(out[i].User.Account.FullName()) < strings.ToLower(out[j].User.Account.FullName())
	})
	return out
}

// matchRequirements is the share of requirement keywords present in words.
func matchRequirements(job models.Job, words map[string]bool) (float64, []string) {
	keywords := extractKeywords(job.Requirements)
	if len(keywords) == 0 {
		return 0.5, nil // neutral without requirements
	}
	var hits []string
	for _, k := range keywords {
		if words[k] {
			hits = append(hits, k)
		}
	}
	return float64(len(hits)) / float64(len(keywords)), hits
}

func matchTitle(job models.Job, role string) float64 {
	keywords := extractKeywords(job.Name)
	if len(keywords) == 0 || strings.TrimSpace(role) == "" {
		return 0.5
	}
	words := tokenSet(role)
	matched := 0
	for _, k := range keywords {
		if words[k] {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

var stopWords = map[string]bool{
	"the": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "with": true, "by": true, "is": true,
	"year": true, "years": true, "experience": true, "plus": true,
}

// extractKeywords returns the distinct meaningful words of text, in order.
func extractKeywords(text string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range tokens(text) {
		if len(word) < 2 || stopWords[word] || seen[word] || !hasLetter(word) {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}

func tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokens(text) {
		set[t] = true
	}
	return set
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
