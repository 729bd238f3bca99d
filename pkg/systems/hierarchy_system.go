package systems

import (
	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
)

// HierarchySystem 让子实体跟随父实体移动
// 子实体位置 = 父实体位置 + 偏移；父实体已不存在时子实体一并移除
type HierarchySystem struct {
	entityManager *ecs.EntityManager
}

// NewHierarchySystem 创建层级同步系统
func NewHierarchySystem(em *ecs.EntityManager) *HierarchySystem {
	return &HierarchySystem{entityManager: em}
}

// Update 同步所有子实体的位置
func (s *HierarchySystem) Update(deltaTime float64) {
	children := ecs.GetEntitiesWith2[*components.ParentComponent, *components.PositionComponent](s.entityManager)

	for _, id := range children {
		parent, _ := ecs.GetComponent[*components.ParentComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		parentPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, parent.Parent)
		if !ok || !s.entityManager.IsAlive(parent.Parent) {
			s.entityManager.DestroyEntity(id)
			continue
		}

		pos.X = parentPos.X + parent.OffsetX
		pos.Y = parentPos.Y + parent.OffsetY
	}
}
