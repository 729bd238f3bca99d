package systems

import (
	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
)

// findSceneNode 返回场景根节点
func findSceneNode(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.SceneNodeComponent](em) {
		if em.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}

// findBird 返回玩家角色
func findBird(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.BirdComponent](em) {
		if em.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}
