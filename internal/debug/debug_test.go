package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	s := Stats{FPS: 59, Alloc: 3 * 1024 * 1024, Yaw: 1.234, Light: 0.3}
	tests := []struct {
		name string
		o    *Overlay
		want []string
	}{
		{"off", New(false, false), nil},
		{"fps", New(true, false), []string{"FPS: 59"}},
		{"fps and mem", New(true, true), []string{"FPS: 59", "Mem: 3.00 MiB"}},
		{"state", &Overlay{ShowState: true}, []string{"Yaw: 1.23  Light: 0.30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.o.Lines(s))
			assert.Equal(t, tt.want != nil, tt.o.Enabled())
		})
	}
}
