package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
type SpriteComponent struct {
	Image    *ebiten.Image
	Width    float64 // 绘制宽度（点），与图片尺寸不同时按比例缩放
	Height   float64 // 绘制高度（点）
	Rotation float64 // 旋转角度（弧度，逆时针为正）
	Z        float64 // 绘制层级，越小越先绘制
}
