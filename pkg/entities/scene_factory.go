package entities

import (
	"fmt"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
)

// NewBackgroundEntity 创建铺满屏幕的背景
func NewBackgroundEntity(em *ecs.EntityManager, rl ResourceLoader, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if err := checkDeps(em, rl, cfg); err != nil {
		return 0, err
	}

	sprite, err := newSprite(rl, cfg.Background.Texture, cfg.Screen.Width, cfg.Screen.Height, cfg.Background.Z)
	if err != nil {
		return 0, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Screen.Height / 2,
	})
	ecs.AddComponent(em, id, sprite)
	return id, nil
}

// NewScoreLabelEntity 创建分数标签，位于屏幕顶部水平居中
// 返回的 LabelComponent 可直接绑定为分数显示目标
func NewScoreLabelEntity(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, *components.LabelComponent, error) {
	if em == nil {
		return 0, nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, nil, fmt.Errorf("gameplay config cannot be nil")
	}

	label := &components.LabelComponent{
		Size:  cfg.ScoreLabel.FontSize,
		Color: cfg.ScoreLabelColor(),
		Z:     cfg.ScoreLabel.Z,
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Screen.Height - cfg.ScoreLabel.OffsetFromTop,
	})
	ecs.AddComponent(em, id, label)
	return id, label, nil
}

// NewSceneNodeEntity 创建场景根节点
// 生成循环与结束后的延时重置都挂在该节点的 ActionComponent 上
func NewSceneNodeEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SceneNodeComponent{})
	ecs.AddComponent(em, id, &components.ActionComponent{})
	return id
}
