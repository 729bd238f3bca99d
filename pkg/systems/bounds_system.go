package systems

import (
	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
)

// BoundsSystem 移除完全越过屏幕右边缘的子弹
// 只负责移除，子弹的运动完全由脚本动作驱动
type BoundsSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   float64
}

// NewBoundsSystem 创建边界检测系统
func NewBoundsSystem(em *ecs.EntityManager, screenWidth float64) *BoundsSystem {
	return &BoundsSystem{
		entityManager: em,
		screenWidth:   screenWidth,
	}
}

// Update 检查所有子弹
func (s *BoundsSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.KindComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		kind, _ := ecs.GetComponent[*components.KindComponent](s.entityManager, id)
		if kind.Kind != components.KindBullet {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		halfWidth := 0.0
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			halfWidth = col.Width / 2
		}
		if pos.X-halfWidth > s.screenWidth {
			s.entityManager.DestroyEntity(id)
		}
	}
}
