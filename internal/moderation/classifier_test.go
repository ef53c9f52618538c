package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEmptyContentIsSpam(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t"} {
		d := Classify(text)
		assert.Equal(t, ClassSpam, d.Classification)
		assert.Equal(t, 1.0, d.Confidence)
		assert.Equal(t, ActionHide, d.SuggestedAction)
		assert.True(t, d.AutoApplicable())
	}
}

func TestClassifyToxicDominates(t *testing.T) {
	t.Parallel()

	// Toxic plus spam signals: toxic wins.
	d := Classify("you absolute moron, buy now at www.example.com")
	assert.Equal(t, ClassToxic, d.Classification)
	assert.Equal(t, ActionHide, d.SuggestedAction)
	assert.GreaterOrEqual(t, d.Confidence, 0.95)
	assert.True(t, d.AutoApplicable())
	assert.Equal(t, 1, d.Signals.ToxicHits)
	assert.Equal(t, 1, d.Signals.SpamHits)
	assert.True(t, d.Signals.HasLink)
}

func TestClassifyMultipleToxicHitsRaiseConfidence(t *testing.T) {
	t.Parallel()

	d := Classify("idiot. pathetic.")
	assert.Equal(t, ClassToxic, d.Classification)
	assert.Equal(t, 0.99, d.Confidence)
}

func TestClassifyShortLinkMessageIsSpam(t *testing.T) {
	t.Parallel()

	d := Classify("vote here https://sketchy.example")
	assert.Equal(t, ClassSpam, d.Classification)
	assert.True(t, d.AutoApplicable())
	assert.True(t, d.Signals.HasLink)
}

func TestClassifyLongMessageWithLinkIsNotSpam(t *testing.T) {
	t.Parallel()

	text := "I compared both tracks side by side and wrote up my thoughts here " +
		"https://blog.example/review " + strings.Repeat("really detailed analysis ", 3)
	d := Classify(text)
	assert.Equal(t, ClassSafe, d.Classification)
	assert.True(t, d.Signals.HasLink)
}

func TestClassifySingleSpamSignalGoesToReview(t *testing.T) {
	t.Parallel()

	d := Classify("hey everyone there is a big giveaway happening soon, genuinely curious what you all think about this battle")
	assert.Equal(t, ClassSpam, d.Classification)
	assert.Equal(t, ActionReview, d.SuggestedAction)
	assert.False(t, d.AutoApplicable())
}

func TestClassifyBorderline(t *testing.T) {
	t.Parallel()

	d := Classify("this whole thing feels rigged to me")
	assert.Equal(t, ClassBorderline, d.Classification)
	assert.Equal(t, ActionReview, d.SuggestedAction)
	assert.False(t, d.AutoApplicable())
}

func TestClassifySafe(t *testing.T) {
	t.Parallel()

	d := Classify("great matchup, the second verse on track A is incredible")
	assert.Equal(t, ClassSafe, d.Classification)
	assert.Equal(t, ActionAllow, d.SuggestedAction)
	assert.Equal(t, Signals{}, d.Signals)
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	const text = "check out my channel www.example.com"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}
