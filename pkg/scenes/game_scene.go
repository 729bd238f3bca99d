package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/decker502/pooattack/pkg/entities"
	"github.com/decker502/pooattack/pkg/game"
	"github.com/decker502/pooattack/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Resources 场景需要的资源接口
// game.ResourceManager 同时提供纹理和字体
type Resources interface {
	entities.ResourceLoader
	systems.FontLoader
}

// GameScene 唯一的游戏场景
//
// 持有实体管理器、游戏会话和全部系统，每帧按固定顺序推进：
// 输入、脚本动作、层级同步、物理、碰撞解析、边界、清理。
// 同一帧物理产生的接触在下一帧输入之前全部处理完毕。
type GameScene struct {
	cfg       *config.GameplayConfig
	resources Resources

	// ECS Framework and Systems
	entityManager   *ecs.EntityManager
	session         *game.GameSession
	playerControl   *systems.PlayerControlSystem
	actionSystem    *systems.ActionSystem
	hierarchySystem *systems.HierarchySystem
	physicsSystem   *systems.PhysicsSystem
	collisionSystem *systems.CollisionSystem
	boundsSystem    *systems.BoundsSystem
	spawnSystem     *systems.SpawnSystem
	renderSystem    *systems.RenderSystem

	// 当前一局的场景骨架，重置后重新创建
	bird  ecs.EntityID
	label *components.LabelComponent

	showHitboxes bool
	resetCount   int
}

// NewGameScene 创建游戏场景并搭建初始骨架
//
// 参数:
//   - res: 纹理与字体来源
//   - cfg: 校验过的玩法配置
//   - input: 点击输入源
//   - rng: 缺口中心采样使用的随机源
//
// 返回:
//   - *GameScene: 处于 NotStarted 状态的场景
//   - error: 依赖缺失或骨架实体创建失败
func NewGameScene(res Resources, cfg *config.GameplayConfig, input systems.TapSource, rng *rand.Rand) (*GameScene, error) {
	if res == nil {
		return nil, fmt.Errorf("resources cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	s := &GameScene{
		cfg:           cfg,
		resources:     res,
		entityManager: ecs.NewEntityManager(),
	}
	s.initSystems(input, rng)

	if err := s.build(); err != nil {
		return nil, fmt.Errorf("failed to build game scene: %w", err)
	}

	log.Printf("[GameScene] Scene ready (%.0fx%.0f)", cfg.Screen.Width, cfg.Screen.Height)
	return s, nil
}

// Update 按固定顺序推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.playerControl.Update(deltaTime)
	s.actionSystem.Update(deltaTime)
	s.hierarchySystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.boundsSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	if s.showHitboxes {
		s.drawDebugOverlay(screen)
	}
}

// Reset 完整重置：清空全部实体与动作，分数归零，回到 NotStarted
// 纪元自增，旧纪元安排的延时动作不会再生效
func (s *GameScene) Reset() {
	s.resetCount++
	s.entityManager.Clear()
	s.physicsSystem.Reset()
	s.session.Reset()

	if err := s.build(); err != nil {
		log.Printf("[GameScene] 错误: 重置后重建场景失败: %v", err)
	}
	log.Printf("[GameScene] Reset #%d complete (epoch=%d)", s.resetCount, s.session.Epoch())
}

// Session 返回当前游戏会话
func (s *GameScene) Session() *game.GameSession {
	return s.session
}

// EntityManager 返回实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Bird 返回当前小鸟实体
func (s *GameScene) Bird() ecs.EntityID {
	return s.bird
}

// ScoreText 返回分数标签当前文本
func (s *GameScene) ScoreText() string {
	if s.label == nil {
		return ""
	}
	return s.label.Text
}

// ResetCount 返回场景被重置的次数
func (s *GameScene) ResetCount() int {
	return s.resetCount
}

// SetShowHitboxes 开关碰撞盒叠加层
func (s *GameScene) SetShowHitboxes(show bool) {
	s.showHitboxes = show
}

// CountKind 统计指定类别的存活实体
func (s *GameScene) CountKind(kind components.EntityKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](s.entityManager) {
		k, _ := ecs.GetComponent[*components.KindComponent](s.entityManager, id)
		if k.Kind == kind && s.entityManager.IsAlive(id) {
			n++
		}
	}
	return n
}
