package entities

import (
	"log"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
)

// NewBirdEntity 创建玩家角色实体
// 小鸟初始位于屏幕中心。刚体为动态，但在游戏开始前不受重力影响，
// 由 PlayerControlSystem 在第一次点击时开启重力。
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器
//   - cfg: 玩法配置
//
// 返回:
//   - ecs.EntityID: 小鸟实体ID，失败时返回 0
//   - error: 依赖缺失或纹理加载失败
func NewBirdEntity(em *ecs.EntityManager, rl ResourceLoader, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if err := checkDeps(em, rl, cfg); err != nil {
		return 0, err
	}

	sprite, err := newSprite(rl, cfg.Bird.Texture, cfg.Bird.Width, cfg.Bird.Height, cfg.Bird.Z)
	if err != nil {
		return 0, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Screen.Height / 2,
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Bird.Width,
		Height: cfg.Bird.Height,
	})
	ecs.AddComponent(em, id, &components.PhysicsBodyComponent{
		Kind:              components.KindBird,
		CategoryMask:      components.CategoryBird,
		ContactTestMask:   components.CategoryPipe | components.CategoryGround,
		CollisionMask:     components.CategoryGround,
		Dynamic:           true,
		AffectedByGravity: false,
		Mass:              cfg.Bird.Mass,
	})
	ecs.AddComponent(em, id, &components.KindComponent{Kind: components.KindBird})
	ecs.AddComponent(em, id, &components.BirdComponent{})

	log.Printf("[BirdFactory] 创建小鸟 %d at (%.0f, %.0f)", id, cfg.Screen.Width/2, cfg.Screen.Height/2)
	return id, nil
}
