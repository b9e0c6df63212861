package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedBar(t *testing.T) {
	b := SeedBar(100)
	assert.Equal(t, Bar{Day: 0, Open: 100, High: 100, Low: 100, Close: 100}, b)
	assert.NoError(t, b.Validate())
	assert.Equal(t, 0.0, b.Change())
}

func TestBarChange(t *testing.T) {
	b := Bar{Day: 3, Open: 100, High: 112, Low: 99, Close: 110}
	assert.InDelta(t, 0.10, b.Change(), 1e-12)
}

func TestBarValidate(t *testing.T) {
	tests := []struct {
		name    string
		bar     Bar
		wantErr bool
	}{
		{"up day", Bar{Day: 1, Open: 100, High: 104, Low: 99, Close: 103}, false},
		{"down day", Bar{Day: 2, Open: 103, High: 104, Low: 95, Close: 96}, false},
		{"flat", Bar{Day: 4, Open: 5, High: 5, Low: 5, Close: 5}, false},
		{"negative day", Bar{Day: -1, Open: 1, High: 1, Low: 1, Close: 1}, true},
		{"low above open", Bar{Day: 1, Open: 100, High: 104, Low: 101, Close: 103}, true},
		{"high below close", Bar{Day: 1, Open: 100, High: 102, Low: 99, Close: 103}, true},
		{"zero price", Bar{Day: 1, Open: 0, High: 1, Low: 0, Close: 1}, true},
		{"nan", Bar{Day: 1, Open: math.NaN(), High: 1, Low: 1, Close: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bar.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
