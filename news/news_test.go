package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	events := All()
	require.Len(t, events, 8)
	assert.Equal(t, 8, Len())

	var pos, neg []float64
	for _, ev := range events {
		assert.NotEmpty(t, ev.Title)
		switch ev.Sentiment {
		case Positive:
			assert.Greater(t, ev.Impact, 0.0, ev.Title)
			pos = append(pos, ev.Impact)
		case Negative:
			assert.Less(t, ev.Impact, 0.0, ev.Title)
			neg = append(neg, ev.Impact)
		default:
			t.Fatalf("unexpected sentiment %v", ev.Sentiment)
		}
	}

	assert.ElementsMatch(t, []float64{0.18, 0.15, 0.08, 0.05}, pos)
	assert.ElementsMatch(t, []float64{-0.25, -0.18, -0.10, -0.06}, neg)
}

func TestAllReturnsCopy(t *testing.T) {
	events := All()
	events[0].Impact = 99
	events[0].Title = "mutated"

	assert.Equal(t, 0.18, At(0).Impact)
	assert.NotEqual(t, "mutated", All()[0].Title)
}

func TestSentimentString(t *testing.T) {
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "unknown", Sentiment(7).String())
}
