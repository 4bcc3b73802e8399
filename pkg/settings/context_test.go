package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{"empty", &Run{}},
		{"with values", &Run{NoColor: true, StoreBackend: "memory", LogFile: "folio.log"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := IntoContext(context.Background(), tt.settings)
			got, ok := FromContext(ctx)
			require.True(t, ok)
			assert.Same(t, tt.settings, got)
		})
	}
}

func TestFromContextMissing(t *testing.T) {
	got, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)

	wrong := context.WithValue(context.Background(), settingsContextKey, "wrong type")
	got, ok = FromContext(wrong)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFromContextOrDefault(t *testing.T) {
	assert.Equal(t, NewCliParams(), FromContextOrDefault(context.Background()))

	run := &Run{Theme: "aurora"}
	assert.Same(t, run, FromContextOrDefault(IntoContext(context.Background(), run)))

	assert.Equal(t, NewCliParams(), FromContextOrDefault(IntoContext(context.Background(), nil)))
}
