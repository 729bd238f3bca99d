package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/decker502/pooattack/pkg/entities"
	"github.com/decker502/pooattack/pkg/game"
)

// spawnActionKey 场景节点上生成循环动作的名称
const spawnActionKey = "spawn"

// SpawnSystem 管道对生成器
//
// Start 在场景节点上启动循环：立即生成一对管道，等待生成间隔，重复。
// 每对管道有独立的滚动动作，生成循环停止不影响已经在飞的管道。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	loader        entities.ResourceLoader
	cfg           *config.GameplayConfig
	session       *game.GameSession
	actions       *ActionSystem
	rng           *rand.Rand
}

// NewSpawnSystem 创建管道生成系统
// rng 用于采样缺口中心，测试中传入固定种子
func NewSpawnSystem(
	em *ecs.EntityManager,
	rl entities.ResourceLoader,
	cfg *config.GameplayConfig,
	session *game.GameSession,
	actions *ActionSystem,
	rng *rand.Rand,
) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		loader:        rl,
		cfg:           cfg,
		session:       session,
		actions:       actions,
		rng:           rng,
	}
}

// Start 启动生成循环
// 已经在生成时返回 false，不会启动第二个循环
func (s *SpawnSystem) Start() bool {
	node, ok := findSceneNode(s.entityManager)
	if !ok {
		log.Printf("[SpawnSystem] 警告: 场景节点不存在，无法启动生成")
		return false
	}
	if !s.session.MarkSpawning() {
		return false
	}

	s.actions.RunAction(node, spawnActionKey, components.RepeatForever(components.Sequence(
		components.Run(func() {
			if _, err := s.SpawnPipePair(); err != nil {
				log.Printf("[SpawnSystem] Failed to spawn pipe pair: %v", err)
			}
		}),
		components.Wait(s.cfg.Pipe.SpawnInterval),
	)))

	log.Printf("[SpawnSystem] Spawning started, interval %.1fs", s.cfg.Pipe.SpawnInterval)
	return true
}

// Stop 停止生成循环，已生成的管道不受影响
func (s *SpawnSystem) Stop() {
	if node, ok := findSceneNode(s.entityManager); ok {
		s.actions.RemoveActionsByKey(node, spawnActionKey)
	}
	s.session.StopSpawning()
}

// SpawnPipePair 在屏幕右侧外生成一对管道，并让它滚动到左侧外后自移除
func (s *SpawnSystem) SpawnPipePair() (ecs.EntityID, error) {
	distance := s.cfg.Screen.Width + s.cfg.Pipe.Width
	gapCenterY := entities.SampleGapCenterY(s.rng, s.cfg)

	node, err := entities.NewPipePairEntity(s.entityManager, s.loader, s.cfg, distance, gapCenterY)
	if err != nil {
		return 0, err
	}

	s.actions.RunAction(node, "scroll", components.Sequence(
		components.MoveBy(-distance, 0, s.cfg.Pipe.ScrollDuration),
		components.RemoveSelf(),
	))
	return node, nil
}
