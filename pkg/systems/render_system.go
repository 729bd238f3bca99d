package systems

import (
	"image/color"
	"log"
	"sort"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FontLoader 按字号提供字体
// game.ResourceManager 实现了该接口
type FontLoader interface {
	LoadFont(size float64) (*text.GoTextFace, error)
}

// hitboxColor 碰撞盒叠加层颜色
var hitboxColor = color.RGBA{R: 255, G: 0, B: 0, A: 200}

// drawItem 一帧内待绘制的实体
type drawItem struct {
	id ecs.EntityID
	z  float64
}

// RenderSystem 绘制精灵和文本标签
//
// 世界坐标原点在左下角、Y 轴向上；绘制时翻转为屏幕坐标 screenY = H − y。
// 实体按 Z 升序绘制，Z 相同时按实体 ID 排序，保证每帧顺序稳定。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         FontLoader
	screenHeight  float64
	fontErrLogged bool
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - fonts: 字体来源，为 nil 时不绘制文本
//   - screenHeight: 逻辑屏幕高度，用于坐标翻转
func NewRenderSystem(em *ecs.EntityManager, fonts FontLoader, screenHeight float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		fonts:         fonts,
		screenHeight:  screenHeight,
	}
}

// ToScreen 世界坐标转换为屏幕坐标
func (s *RenderSystem) ToScreen(x, y float64) (float64, float64) {
	return x, s.screenHeight - y
}

// Draw 按层级绘制所有精灵与标签
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, item := range s.collect() {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, item.id); ok {
			s.drawSprite(screen, item.id, sprite)
			continue
		}
		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, item.id); ok {
			s.drawLabel(screen, item.id, label)
		}
	}
}

// collect 收集可绘制实体并排序
func (s *RenderSystem) collect() []drawItem {
	items := make([]drawItem, 0)

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		items = append(items, drawItem{id: id, z: sprite.Z})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.LabelComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		items = append(items, drawItem{id: id, z: label.Z})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].z != items[j].z {
			return items[i].z < items[j].z
		}
		return items[i].id < items[j].id
	})
	return items
}

// drawSprite 以实体位置为中心绘制精灵，按需缩放到 Width×Height 并旋转
func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID, sprite *components.SpriteComponent) {
	if sprite.Image == nil {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	bounds := sprite.Image.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-imgW/2, -imgH/2)
	if sprite.Width > 0 && sprite.Height > 0 && (sprite.Width != imgW || sprite.Height != imgH) {
		op.GeoM.Scale(sprite.Width/imgW, sprite.Height/imgH)
	}
	// 世界坐标逆时针为正，屏幕坐标 Y 轴向下，需要取反
	if sprite.Rotation != 0 {
		op.GeoM.Rotate(-sprite.Rotation)
	}
	sx, sy := s.ToScreen(pos.X, pos.Y)
	op.GeoM.Translate(sx, sy)

	screen.DrawImage(sprite.Image, op)
}

// drawLabel 以实体位置为中心绘制文本
func (s *RenderSystem) drawLabel(screen *ebiten.Image, id ecs.EntityID, label *components.LabelComponent) {
	if s.fonts == nil || label.Text == "" {
		return
	}

	face, err := s.fonts.LoadFont(label.Size)
	if err != nil {
		if !s.fontErrLogged {
			log.Printf("[RenderSystem] 警告: 无法加载字体: %v", err)
			s.fontErrLogged = true
		}
		return
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sx, sy := s.ToScreen(pos.X, pos.Y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	if label.Color != nil {
		op.ColorScale.ScaleWithColor(label.Color)
	}
	text.Draw(screen, label.Text, face, op)
}

// DrawHitboxes 绘制所有碰撞盒的轮廓（调试叠加层）
func (s *RenderSystem) DrawHitboxes(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		cx, cy := s.ToScreen(pos.X+col.OffsetX, pos.Y+col.OffsetY)
		vector.StrokeRect(screen,
			float32(cx-col.Width/2), float32(cy-col.Height/2),
			float32(col.Width), float32(col.Height),
			2, hitboxColor, false)
	}
}
