package main

import (
	"errors"
	"testing"

	"github.com/decker502/pooattack/pkg/config"
)

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"empty uses defaults", "", false},
		{"override", "rules:\n  pointsPerPipe: 5\n", false},
		{"unknown field", "rules:\n  pointPerPipe: 5\n", true},
		{"invalid value", "bird:\n  mass: 0\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeStrict([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("decodeStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeStrictGapTooTall(t *testing.T) {
	_, err := decodeStrict([]byte("pipe:\n  gapHeight: 5000\n"))
	if !errors.Is(err, config.ErrGapTooTall) {
		t.Errorf("expected ErrGapTooTall, got %v", err)
	}
}
