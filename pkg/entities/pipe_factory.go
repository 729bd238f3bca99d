package entities

import (
	"log"
	"math"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
)

// NewPipePairEntity 创建管道对
//
// 管道对由一个节点实体和两根管道子实体组成：
//   - 节点位于 (x, 0)，承载水平滚动动作
//   - 下管道中心相对节点偏移 gapCenterY
//   - 上管道旋转 π，中心偏移 gapCenterY + 管道高度 + 缺口高度
//
// 调用方负责为节点挂载滚动动作，工厂只负责构造。
//
// 返回:
//   - ecs.EntityID: 节点实体ID
//   - error: 依赖缺失或纹理加载失败（此时不会留下任何实体）
func NewPipePairEntity(em *ecs.EntityManager, rl ResourceLoader, cfg *config.GameplayConfig, x, gapCenterY float64) (ecs.EntityID, error) {
	if err := checkDeps(em, rl, cfg); err != nil {
		return 0, err
	}

	pc := cfg.Pipe
	bottomSprite, err := newSprite(rl, pc.Texture, pc.Width, pc.Height, pc.Z)
	if err != nil {
		return 0, err
	}
	topSprite, err := newSprite(rl, pc.Texture, pc.Width, pc.Height, pc.Z)
	if err != nil {
		return 0, err
	}
	topSprite.Rotation = math.Pi

	node := em.CreateEntity()
	ecs.AddComponent(em, node, &components.PositionComponent{X: x, Y: 0})

	bottom := newPipe(em, node, x, gapCenterY, bottomSprite, pc)
	top := newPipe(em, node, x, gapCenterY+pc.Height+pc.GapHeight, topSprite, pc)

	ecs.AddComponent(em, node, &components.PipePairComponent{
		Members:    []ecs.EntityID{bottom, top},
		GapCenterY: gapCenterY,
		GapHeight:  pc.GapHeight,
	})

	log.Printf("[PipeFactory] 创建管道对 %d (pipes %d, %d), gapCenterY=%.1f", node, bottom, top, gapCenterY)
	return node, nil
}

// newPipe 创建单根管道并挂到节点下
func newPipe(em *ecs.EntityManager, parent ecs.EntityID, x, offsetY float64, sprite *components.SpriteComponent, pc config.PipeConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: offsetY})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  pc.Width,
		Height: pc.Height,
	})
	ecs.AddComponent(em, id, &components.PhysicsBodyComponent{
		Kind:            components.KindPipe,
		CategoryMask:    components.CategoryPipe,
		ContactTestMask: components.CategoryBird,
		CollisionMask:   components.CategoryNone,
		Dynamic:         false,
	})
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindPipe})
	ecs.AddComponent(em, id, &components.ParentComponent{
		Parent:  parent,
		OffsetY: offsetY,
	})
	return id
}
