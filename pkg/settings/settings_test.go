package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	assert.Equal(t, &Run{ExitOnError: true}, got)
}

func TestCliBinaryName(t *testing.T) {
	assert.Equal(t, "folio", CliBinaryName)
}

func TestRunOverrides(t *testing.T) {
	tests := []struct {
		name string
		run  *Run
		want map[string]string
	}{
		{"nil", nil, map[string]string{}},
		{"empty", &Run{}, map[string]string{}},
		{
			name: "store and theme",
			run:  &Run{StoreBackend: "sqlite", StorePath: "/tmp/folio.db", Theme: "aurora", NoColor: true},
			want: map[string]string{
				"storage.backend": "sqlite",
				"storage.path":    "/tmp/folio.db",
				"ui.theme":        "aurora",
			},
		},
		{"accent only", &Run{Accent: "pink"}, map[string]string{"ui.accent": "pink"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.run.Overrides())
		})
	}
}
