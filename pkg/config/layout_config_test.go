package config

import "testing"

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name         string
		scale        float64
		wantW, wantH int
	}{
		{"default half scale", 0.5, 375, 667},
		{"zero scale falls back to 1", 0, 750, 1334},
		{"negative scale falls back to 1", -2, 750, 1334},
		{"full scale", 1, 750, 1334},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameplayConfig()
			cfg.Screen.WindowScale = tt.scale
			w, h := WindowSize(cfg)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("WindowSize: got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLogicalSize(t *testing.T) {
	cfg := DefaultGameplayConfig()
	w, h := LogicalSize(cfg)
	if w != 750 || h != 1334 {
		t.Errorf("LogicalSize: got %dx%d, want 750x1334", w, h)
	}
}

func TestFixedDeltaTime(t *testing.T) {
	if got := FixedDeltaTime * TicksPerSecond; got < 0.999999 || got > 1.000001 {
		t.Errorf("FixedDeltaTime * TicksPerSecond: got %v, want 1", got)
	}
}
