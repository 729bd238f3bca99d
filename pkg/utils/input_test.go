package utils

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewPointerTapSourceKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []ebiten.Key
	}{
		{"defaults", nil, DefaultTapKeys},
		{"custom", []ebiten.Key{ebiten.KeyEnter}, []ebiten.Key{ebiten.KeyEnter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewPointerTapSource(tt.keys...)
			if !slices.Equal(src.Keys(), tt.want) {
				t.Errorf("Keys() = %v, want %v", src.Keys(), tt.want)
			}
		})
	}
}

func TestPointerTapSourceKeysAreCopied(t *testing.T) {
	keys := []ebiten.Key{ebiten.KeyEnter}
	src := NewPointerTapSource(keys...)
	keys[0] = ebiten.KeyA

	if src.Keys()[0] != ebiten.KeyEnter {
		t.Error("tap source should not alias the caller's slice")
	}
}
