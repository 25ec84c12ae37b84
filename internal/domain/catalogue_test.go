package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ringdown-toolkit/internal/units"
)

func TestLoadCatalogue(t *testing.T) {
	cat := LoadCatalogue()

	t.Run("three entries in definition order", func(t *testing.T) {
		assert.Equal(t, 3, cat.Len())
		assert.Equal(t, []string{"GW150914", "GW170104", "GW190521"}, cat.Names())
	})

	t.Run("canonical values", func(t *testing.T) {
		tests := []struct {
			name      string
			tauMS     float64
			freqHz    float64
			reference string
		}{
			{"GW150914", 4.0, 251, "Abbott et al. (2016, PRL 116, 061102)"},
			{"GW170104", 5.0, 200, "Abbott et al. (2017, PRL 118, 221101)"},
			{"GW190521", 5.5, 190, "Abbott et al. (2020, PRL 125, 101102)"},
		}
		for _, tt := range tests {
			event, ok := cat.Lookup(tt.name)
			require.True(t, ok, tt.name)
			assert.Equal(t, tt.tauMS, event.Tau.MustTo(units.Millisecond).Value())
			assert.Equal(t, tt.freqHz, event.Freq.MustTo(units.Hertz).Value())
			assert.Equal(t, tt.reference, event.Reference)
		}
	})

	t.Run("unknown name misses", func(t *testing.T) {
		_, ok := cat.Lookup("GW000000")
		assert.False(t, ok)
	})

	t.Run("rebuilt fresh on each call", func(t *testing.T) {
		first := LoadCatalogue()
		names := first.Names()
		names[0] = "mutated"

		second := LoadCatalogue()
		assert.Equal(t, []string{"GW150914", "GW170104", "GW190521"}, second.Names())
		assert.Equal(t, []string{"GW150914", "GW170104", "GW190521"}, first.Names())
	})
}
