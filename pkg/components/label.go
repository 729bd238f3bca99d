package components

import "image/color"

// LabelComponent 文本标签（分数显示）
type LabelComponent struct {
	Text  string
	Size  float64 // 字号（像素）
	Color color.Color
	Z     float64
}

// SetText 更新显示文本
// 使 LabelComponent 满足 game.ScoreDisplay 接口
func (l *LabelComponent) SetText(text string) {
	l.Text = text
}
