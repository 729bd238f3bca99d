package entities

import (
	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
)

// NewGroundEntity 创建地面实体
// 地面水平居中，底边贴住屏幕底部；静态刚体，只与小鸟产生接触
func NewGroundEntity(em *ecs.EntityManager, rl ResourceLoader, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if err := checkDeps(em, rl, cfg); err != nil {
		return 0, err
	}

	sprite, err := newSprite(rl, cfg.Ground.Texture, cfg.Ground.Width, cfg.Ground.Height, cfg.Ground.Z)
	if err != nil {
		return 0, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Ground.Height / 2,
	})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Ground.Width,
		Height: cfg.Ground.Height,
	})
	ecs.AddComponent(em, id, &components.PhysicsBodyComponent{
		Kind:            components.KindGround,
		CategoryMask:    components.CategoryGround,
		ContactTestMask: components.CategoryBird,
		CollisionMask:   components.CategoryNone,
		Dynamic:         false,
	})
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindGround})

	return id, nil
}
