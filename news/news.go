// Package news holds the fixed catalog of market shocks that can hit the
// simulated stock on any given day.
package news

// Sentiment tells whether an event pushes the price up or down.
type Sentiment int

const (
	Positive Sentiment = iota
	Negative
)

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// Event is a discrete shock. Impact is a signed fraction added to the
// day's price change, e.g. -0.25 knocks a quarter off the close.
type Event struct {
	Title     string
	Impact    float64
	Sentiment Sentiment
}

var catalog = [...]Event{
	{Title: "Breakthrough product wins regulatory approval", Impact: 0.18, Sentiment: Positive},
	{Title: "Quarterly earnings crush analyst estimates", Impact: 0.15, Sentiment: Positive},
	{Title: "Major fund discloses a large new stake", Impact: 0.08, Sentiment: Positive},
	{Title: "Analysts upgrade the stock to buy", Impact: 0.05, Sentiment: Positive},
	{Title: "Regulators open an accounting fraud probe", Impact: -0.25, Sentiment: Negative},
	{Title: "CEO resigns amid scandal", Impact: -0.18, Sentiment: Negative},
	{Title: "Flagship product recalled over safety concerns", Impact: -0.10, Sentiment: Negative},
	{Title: "Analysts downgrade the stock to sell", Impact: -0.06, Sentiment: Negative},
}

// All returns every event in the catalog. The returned slice is a copy.
func All() []Event {
	out := make([]Event, len(catalog))
	copy(out, catalog[:])
	return out
}

// Len is the catalog size.
func Len() int { return len(catalog) }

// At returns the i'th catalog event. It panics if i is out of range.
func At(i int) Event { return catalog[i] }
