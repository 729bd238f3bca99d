package systems

import (
	"log"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/decker502/pooattack/pkg/game"
)

// ContactSource 提供本帧的接触事件
// PhysicsSystem 实现了该接口
type ContactSource interface {
	Contacts() []Contact
}

// SpawnStopper 停止管道生成
// SpawnSystem 实现了该接口
type SpawnStopper interface {
	Stop()
}

// contactHandler 处理一种类别对的接触
// low/high 分别是类别较小/较大的实体
type contactHandler func(low, high ecs.EntityID)

// CollisionSystem 把接触事件解释为计分或游戏结束
//
// 按无序类别对查表分发：
//   - {Pipe, Bullet}: 移除两者并加分
//   - {Bird, Pipe} / {Bird, Ground}: 游戏未结束时进入 Over
//   - 其他组合忽略
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	actions       *ActionSystem
	spawner       SpawnStopper
	contacts      ContactSource
	cfg           *config.GameplayConfig
	onReset       func()

	handlers map[components.KindPair]contactHandler
}

// NewCollisionSystem 创建碰撞解析系统
//
// 参数:
//   - em: 实体管理器
//   - session: 当前游戏会话（状态与分数）
//   - actions: 脚本动作系统，用于冻结动作和安排延时重置
//   - spawner: 管道生成系统，游戏结束时停止生成
//   - contacts: 接触事件来源
//   - cfg: 玩法配置（分值、重置延时）
//   - onReset: 延时结束后执行的完整重置
func NewCollisionSystem(
	em *ecs.EntityManager,
	session *game.GameSession,
	actions *ActionSystem,
	spawner SpawnStopper,
	contacts ContactSource,
	cfg *config.GameplayConfig,
	onReset func(),
) *CollisionSystem {
	s := &CollisionSystem{
		entityManager: em,
		session:       session,
		actions:       actions,
		spawner:       spawner,
		contacts:      contacts,
		cfg:           cfg,
		onReset:       onReset,
	}
	s.handlers = map[components.KindPair]contactHandler{
		components.NewKindPair(components.KindPipe, components.KindBullet): s.handleBulletPipe,
		components.NewKindPair(components.KindBird, components.KindPipe):   s.handleBirdHazard,
		components.NewKindPair(components.KindBird, components.KindGround): s.handleBirdHazard,
	}
	return s
}

// Update 处理本帧所有接触
func (s *CollisionSystem) Update(deltaTime float64) {
	for _, c := range s.contacts.Contacts() {
		s.Resolve(c)
	}
}

// Resolve 处理单个接触事件
// 重复投递的事件是安全的：已移除的实体和已结束的游戏都不会再产生效果
func (s *CollisionSystem) Resolve(c Contact) {
	pair := components.NewKindPair(c.KindA, c.KindB)
	handler, ok := s.handlers[pair]
	if !ok {
		return
	}

	low, high := c.A, c.B
	if c.KindA != pair.Low {
		low, high = c.B, c.A
	}
	handler(low, high)
}

// handleBulletPipe 子弹击中管道：两者各移除一次，加分
func (s *CollisionSystem) handleBulletPipe(pipe, bullet ecs.EntityID) {
	if !s.entityManager.IsAlive(pipe) || !s.entityManager.IsAlive(bullet) {
		return
	}

	s.entityManager.DestroyEntity(pipe)
	s.entityManager.DestroyEntity(bullet)
	s.session.Score().AddPoints(s.cfg.Rules.PointsPerPipe)

	log.Printf("[CollisionSystem] Bullet %d destroyed pipe %d, score %d", bullet, pipe, s.session.Score().Score())
}

// handleBirdHazard 小鸟撞到管道或地面
func (s *CollisionSystem) handleBirdHazard(bird, hazard ecs.EntityID) {
	if s.session.State() == game.StateOver {
		return
	}
	s.GameOver(bird)
}

// GameOver 结束本局
//
// 停止所有脚本动作与生成循环，冻结小鸟，
// 然后在场景节点上安排延时重置（按当前纪元打标，提前重置会使其失效）
func (s *CollisionSystem) GameOver(bird ecs.EntityID) {
	if !s.session.End() {
		return
	}

	if s.spawner != nil {
		s.spawner.Stop()
	}
	s.actions.RemoveAllActions()

	if phy, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, bird); ok {
		phy.Dynamic = false
		phy.AffectedByGravity = false
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, bird); ok {
		vel.VX, vel.VY = 0, 0
	}

	node, ok := findSceneNode(s.entityManager)
	if !ok {
		log.Printf("[CollisionSystem] 警告: 场景节点不存在，无法安排重置")
		return
	}
	s.actions.RunAction(node, "reset", components.Sequence(
		components.Wait(s.cfg.Rules.GameOverResetDelay),
		components.Run(s.onReset),
	))
}
