package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ringdown-toolkit/internal/units"
)

func TestParseCustomParams(t *testing.T) {
	t.Run("both parameters", func(t *testing.T) {
		event, err := ParseCustomParams([]string{"tau_ms=4.0", "freq_hz=251"}, "")

		require.NoError(t, err)
		assert.Equal(t, "Custom", event.Name)
		assert.Equal(t, CustomReference, event.Reference)
		assert.Equal(t, 4.0, event.Tau.MustTo(units.Millisecond).Value())
		assert.Equal(t, 251.0, event.Freq.MustTo(units.Hertz).Value())
	})

	t.Run("name override", func(t *testing.T) {
		event, err := ParseCustomParams([]string{"tau_ms=2.5", "freq_hz=300"}, "GW250114-proxy")

		require.NoError(t, err)
		assert.Equal(t, "GW250114-proxy", event.Name)
	})

	t.Run("token order does not matter", func(t *testing.T) {
		event, err := ParseCustomParams([]string{"freq_hz=300", "tau_ms=2.5"}, "")

		require.NoError(t, err)
		assert.Equal(t, 2.5, event.Tau.Value())
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		_, err := ParseCustomParams([]string{"tau_ms=4.0", "freq_hz=251", "snr=24.4"}, "")
		assert.NoError(t, err)
	})

	t.Run("missing tau_ms", func(t *testing.T) {
		_, err := ParseCustomParams([]string{"freq_hz=251"}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tau_ms")
		assert.NotContains(t, err.Error(), "freq_hz")
	})

	t.Run("missing both keys sorted", func(t *testing.T) {
		_, err := ParseCustomParams([]string{"snr=24.4"}, "")

		require.Error(t, err)
		var missingErr *MissingParamError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"freq_hz", "tau_ms"}, missingErr.Missing)
		assert.Equal(t, "missing required parameter(s): freq_hz, tau_ms", err.Error())
	})

	t.Run("token without separator", func(t *testing.T) {
		_, err := ParseCustomParams([]string{"tau_ms"}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected key=value")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, err := ParseCustomParams([]string{"tau_ms=fast", "freq_hz=251"}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tau_ms=fast")
	})

	t.Run("value split on first equals only", func(t *testing.T) {
		_, err := ParseCustomParams([]string{"tau_ms=4.0=extra"}, "")
		assert.Error(t, err)
	})

	t.Run("non-positive values accepted silently", func(t *testing.T) {
		event, err := ParseCustomParams([]string{"tau_ms=-1", "freq_hz=0"}, "")

		require.NoError(t, err)
		assert.Equal(t, -1.0, event.Tau.Value())
		assert.Equal(t, 0.0, event.Freq.Value())
	})
}
