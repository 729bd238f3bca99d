// Package utils 提供平台相关的通用工具函数
package utils

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultTapKeys 桌面端视为点击的按键
var DefaultTapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp}

// IsPointerJustPressed 检查本帧是否刚刚按下指针（触摸或鼠标左键）
func IsPointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// PointerTapSource 把触摸、鼠标左键和指定按键统一为一次点击
// 同一帧内多个来源同时触发只算一次
type PointerTapSource struct {
	keys []ebiten.Key
}

// NewPointerTapSource 创建点击输入源
// keys 为空时使用 DefaultTapKeys
func NewPointerTapSource(keys ...ebiten.Key) *PointerTapSource {
	if len(keys) == 0 {
		keys = DefaultTapKeys
	}
	return &PointerTapSource{keys: slices.Clone(keys)}
}

// Keys 返回视为点击的按键
func (s *PointerTapSource) Keys() []ebiten.Key {
	return s.keys
}

// Tapped 返回本帧是否发生了点击
func (s *PointerTapSource) Tapped() bool {
	if IsPointerJustPressed() {
		return true
	}
	for _, k := range s.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
