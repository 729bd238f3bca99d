package systems

import (
	"log"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/config"
	"github.com/decker502/pooattack/pkg/ecs"
	"github.com/decker502/pooattack/pkg/entities"
	"github.com/decker502/pooattack/pkg/game"
)

// TapSource 点击输入来源
// Tapped 每帧调用一次，返回本帧是否发生了一次点击
type TapSource interface {
	Tapped() bool
}

// PlayerControlSystem 把点击翻译为状态相关的动作
//
//   - NotStarted: 启动管道生成，进入 Running，开启小鸟重力
//   - Running: 竖直速度清零后施加向上冲量，发射一颗子弹
//   - Over: 立即完整重置
//
// 每帧最多处理一次点击，不排队。
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	loader        entities.ResourceLoader
	cfg           *config.GameplayConfig
	session       *game.GameSession
	spawner       *SpawnSystem
	actions       *ActionSystem
	physics       *PhysicsSystem
	input         TapSource
	onReset       func()
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(
	em *ecs.EntityManager,
	rl entities.ResourceLoader,
	cfg *config.GameplayConfig,
	session *game.GameSession,
	spawner *SpawnSystem,
	actions *ActionSystem,
	physics *PhysicsSystem,
	input TapSource,
	onReset func(),
) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		loader:        rl,
		cfg:           cfg,
		session:       session,
		spawner:       spawner,
		actions:       actions,
		physics:       physics,
		input:         input,
		onReset:       onReset,
	}
}

// Update 读取输入，有点击时处理
func (s *PlayerControlSystem) Update(deltaTime float64) {
	if s.input == nil || !s.input.Tapped() {
		return
	}
	s.HandleTap()
}

// HandleTap 处理一次点击
func (s *PlayerControlSystem) HandleTap() {
	switch s.session.State() {
	case game.StateNotStarted:
		s.startGame()
	case game.StateRunning:
		s.jumpAndShoot()
	case game.StateOver:
		log.Printf("[PlayerControlSystem] Tap while over, resetting now")
		if s.onReset != nil {
			s.onReset()
		}
	}
}

// startGame 第一次点击：只启动生成并开启重力，不跳跃不射击
func (s *PlayerControlSystem) startGame() {
	s.spawner.Start()
	if !s.session.Start() {
		return
	}

	bird, ok := findBird(s.entityManager)
	if !ok {
		return
	}
	if phy, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, bird); ok {
		phy.AffectedByGravity = true
	}
}

// jumpAndShoot 跳跃并发射子弹
func (s *PlayerControlSystem) jumpAndShoot() {
	bird, ok := findBird(s.entityManager)
	if !ok {
		return
	}

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, bird); ok {
		vel.VY = 0
	}
	s.physics.ApplyImpulse(bird, 0, s.cfg.Bird.JumpImpulse)

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, bird)
	if !ok {
		return
	}
	bullet, err := entities.NewBulletEntity(s.entityManager, s.loader, s.cfg, pos.X, pos.Y)
	if err != nil {
		log.Printf("[PlayerControlSystem] Failed to create bullet: %v", err)
		return
	}
	s.actions.RunAction(bullet, "travel", components.Sequence(
		components.MoveBy(s.cfg.Screen.Width, 0, s.cfg.Bullet.TravelDuration),
		components.RemoveSelf(),
	))
}
