// Package moderation implements the rule-based comment moderation pipeline:
// a deterministic classifier over comment text plus the engine that records
// and applies its decisions.
package moderation

import (
	"strings"
)

// Classifications.
const (
	ClassSafe       = "safe"
	ClassBorderline = "borderline"
	ClassSpam       = "spam"
	ClassToxic      = "toxic"
)

// Suggested actions.
const (
	ActionAllow  = "allow"
	ActionReview = "review"
	ActionHide   = "hide"
)

// ModelName identifies the classifier generation in decision documents.
const ModelName = "keyword-rules-v1"

// autoHideConfidence is the minimum confidence at which a toxic or spam
// decision is applied without human review.
const autoHideConfidence = 0.95

// shortMessageLen bounds the "short message with a link" spam heuristic.
const shortMessageLen = 60

// Keyword tables. Matching is case-insensitive substring.
var (
	toxicKeywords = []string{
		"idiot", "moron", "pathetic", "trash human", "worthless",
		"garbage artist", "kill yourself",
	}
	spamKeywords = []string{
		"buy now", "free followers", "promo code", "click here",
		"check out my channel", "dm me for", "giveaway", "limited offer",
	}
	borderlineKeywords = []string{
		"scam", "fake", "cheater", "ripoff", "rigged", "overrated",
	}
	linkMarkers = []string{"http://", "https://", "www."}
)

// Signals are the raw rule hits backing a decision.
type Signals struct {
	ToxicHits      int  `json:"toxic_hits"`
	SpamHits       int  `json:"spam_hits"`
	BorderlineHits int  `json:"borderline_hits"`
	HasLink        bool `json:"has_link"`
}

// Decision is the structured classifier output.
type Decision struct {
	Model           string  `json:"model"`
	Classification  string  `json:"classification"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
	SuggestedAction string  `json:"suggested_action"`
	Signals         Signals `json:"signals"`
}

// AutoApplicable reports whether the decision qualifies for automatic
// application without review.
func (d Decision) AutoApplicable() bool {
	return (d.Classification == ClassToxic || d.Classification == ClassSpam) &&
		d.Confidence >= autoHideConfidence
}

// Classify produces a decision for the given comment text. Pure and
// deterministic: same text, same decision. It never fails; text with no
// signal matches falls through to safe.
func Classify(text string) Decision {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	sig := Signals{
		ToxicHits:      countHits(lower, toxicKeywords),
		SpamHits:       countHits(lower, spamKeywords),
		BorderlineHits: countHits(lower, borderlineKeywords),
		HasLink:        containsAny(lower, linkMarkers),
	}

	switch {
	case trimmed == "":
		return Decision{
			Model:           ModelName,
			Classification:  ClassSpam,
			Confidence:      1.0,
			Reason:          "empty content",
			SuggestedAction: ActionHide,
			Signals:         sig,
		}

	case sig.ToxicHits > 0:
		conf := 0.95
		if sig.ToxicHits > 1 {
			conf = 0.99
		}
		return Decision{
			Model:           ModelName,
			Classification:  ClassToxic,
			Confidence:      conf,
			Reason:          "toxic keyword match",
			SuggestedAction: ActionHide,
			Signals:         sig,
		}

	case sig.SpamHits > 1 || (sig.HasLink && len(trimmed) < shortMessageLen):
		return Decision{
			Model:           ModelName,
			Classification:  ClassSpam,
			Confidence:      0.95,
			Reason:          "spam signals",
			SuggestedAction: ActionHide,
			Signals:         sig,
		}

	case sig.SpamHits == 1:
		return Decision{
			Model:           ModelName,
			Classification:  ClassSpam,
			Confidence:      0.80,
			Reason:          "single spam signal",
			SuggestedAction: ActionReview,
			Signals:         sig,
		}

	case sig.BorderlineHits > 0:
		return Decision{
			Model:           ModelName,
			Classification:  ClassBorderline,
			Confidence:      0.60,
			Reason:          "borderline keyword match",
			SuggestedAction: ActionReview,
			Signals:         sig,
		}

	default:
		return Decision{
			Model:           ModelName,
			Classification:  ClassSafe,
			Confidence:      0.99,
			Reason:          "no signals matched",
			SuggestedAction: ActionAllow,
			Signals:         sig,
		}
	}
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// asDocument flattens the decision for JSON column storage.
func (d Decision) asDocument() map[string]interface{} {
	return map[string]interface{}{
		"model":            d.Model,
		"classification":   d.Classification,
		"confidence":       d.Confidence,
		"reason":           d.Reason,
		"suggested_action": d.SuggestedAction,
		"signals": map[string]interface{}{
			"toxic_hits":      d.Signals.ToxicHits,
			"spam_hits":       d.Signals.SpamHits,
			"borderline_hits": d.Signals.BorderlineHits,
			"has_link":        d.Signals.HasLink,
		},
	}
}
