package market

// Aggregate rolls daily bars up into bars covering period days each, for
// example weekly bars with period 5. Buckets are aligned on day numbers:
// the bucket holding day d starts at d - d%period and that start is the
// aggregated bar's Day. Buckets with no bars are skipped. Input must be in
// ascending day order.
func Aggregate(bars []Bar, period int) []Bar {
	if period <= 1 {
		return append([]Bar(nil), bars...)
	}

	var out []Bar
	for _, b := range bars {
		start := b.Day - b.Day%period
		if n := len(out); n > 0 && out[n-1].Day == start {
			agg := &out[n-1]
			agg.High = max(agg.High, b.High)
			agg.Low = min(agg.Low, b.Low)
			agg.Close = b.Close
			continue
		}
		out = append(out, Bar{Day: start, Open: b.Open, High: b.High, Low: b.Low, Close: b.Close})
	}
	return out
}
