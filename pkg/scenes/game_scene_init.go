package scenes

import (
	"fmt"
	"math/rand"

	"github.com/decker502/pooattack/pkg/entities"
	"github.com/decker502/pooattack/pkg/game"
	"github.com/decker502/pooattack/pkg/systems"
)

// initSystems 创建会话和全部系统
// 系统只创建一次，重置时复用同一个实体管理器
func (s *GameScene) initSystems(input systems.TapSource, rng *rand.Rand) {
	em := s.entityManager
	cfg := s.cfg

	s.session = game.NewGameSession(nil)
	s.actionSystem = systems.NewActionSystem(em, s.session)
	s.hierarchySystem = systems.NewHierarchySystem(em)
	s.physicsSystem = systems.NewPhysicsSystem(em, cfg.Physics.Gravity)
	s.spawnSystem = systems.NewSpawnSystem(em, s.resources, cfg, s.session, s.actionSystem, rng)
	s.collisionSystem = systems.NewCollisionSystem(em, s.session, s.actionSystem, s.spawnSystem, s.physicsSystem, cfg, s.Reset)
	s.boundsSystem = systems.NewBoundsSystem(em, cfg.Screen.Width)
	s.playerControl = systems.NewPlayerControlSystem(
		em, s.resources, cfg, s.session, s.spawnSystem, s.actionSystem, s.physicsSystem, input, s.Reset,
	)
	s.renderSystem = systems.NewRenderSystem(em, s.resources, cfg.Screen.Height)
}

// build 创建一局所需的骨架实体：场景节点、背景、小鸟、地面、分数标签
func (s *GameScene) build() error {
	em := s.entityManager

	// 场景节点承载生成循环和延时重置动作
	entities.NewSceneNodeEntity(em)

	if _, err := entities.NewBackgroundEntity(em, s.resources, s.cfg); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	bird, err := entities.NewBirdEntity(em, s.resources, s.cfg)
	if err != nil {
		return fmt.Errorf("bird: %w", err)
	}
	s.bird = bird

	if _, err := entities.NewGroundEntity(em, s.resources, s.cfg); err != nil {
		return fmt.Errorf("ground: %w", err)
	}

	_, label, err := entities.NewScoreLabelEntity(em, s.cfg)
	if err != nil {
		return fmt.Errorf("score label: %w", err)
	}
	s.label = label
	s.session.BindDisplay(label)

	return nil
}
