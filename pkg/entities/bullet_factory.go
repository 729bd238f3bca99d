package entities

import (
	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
)

// NewBulletEntity 创建子弹实体
// 子弹出现在 (originX + 发射偏移, originY)，只与管道产生接触，不受重力，
// 运动完全由调用方挂载的脚本动作驱动。
//
// 参数:
//   - originX, originY: 发射者（小鸟）的世界坐标
func NewBulletEntity(em *ecs.EntityManager, rl ResourceLoader, cfg *config.GameplayConfig, originX, originY float64) (ecs.EntityID, error) {
	if err := checkDeps(em, rl, cfg); err != nil {
		return 0, err
	}

	bc := cfg.Bullet
	sprite, err := newSprite(rl, bc.Texture, bc.Width, bc.Height, bc.Z)
	if err != nil {
		return 0, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: originX + bc.OffsetX,
		Y: originY,
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  bc.Width,
		Height: bc.Height,
	})
	ecs.AddComponent(em, id, &components.PhysicsBodyComponent{
		Kind:              components.KindBullet,
		CategoryMask:      components.CategoryBullet,
		ContactTestMask:   components.CategoryPipe,
		CollisionMask:     components.CategoryNone,
		Dynamic:           true,
		AffectedByGravity: false,
		Mass:              1,
	})
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindBullet})

	return id, nil
}
