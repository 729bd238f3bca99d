package game

import "log"

// GameState 游戏状态
type GameState int

const (
	// StateNotStarted 场景已加载，等待第一次点击
	StateNotStarted GameState = iota
	// StateRunning 游戏进行中
	StateRunning
	// StateOver 游戏结束，等待延时重置或点击重置
	StateOver
)

// String 返回状态名称（用于日志）
func (s GameState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameSession 一局游戏的全部可变状态
//
// 由场景控制器独占持有，其他系统通过指针只读访问或调用状态迁移方法。
// 只有 Start / End / Reset 会写入 state。
type GameSession struct {
	state    GameState
	score    *ScoreTracker
	epoch    uint64 // 重置纪元，每次 Reset 自增；脚本动作以此判断是否过期
	spawning bool   // 管道生成循环是否已启动
}

// NewGameSession 创建新的游戏会话
// display 为分数显示目标，可以为 nil
func NewGameSession(display ScoreDisplay) *GameSession {
	return &GameSession{
		state: StateNotStarted,
		score: NewScoreTracker(display),
		epoch: 1,
	}
}

// State 返回当前状态
func (s *GameSession) State() GameState {
	return s.state
}

// Score 返回分数记录器
func (s *GameSession) Score() *ScoreTracker {
	return s.score
}

// Epoch 返回当前重置纪元
func (s *GameSession) Epoch() uint64 {
	return s.epoch
}

// IsSpawning 返回生成循环是否已启动
func (s *GameSession) IsSpawning() bool {
	return s.spawning
}

// MarkSpawning 标记生成循环已启动
// 返回 false 表示已经在生成中，调用方不应再启动第二个循环
func (s *GameSession) MarkSpawning() bool {
	if s.spawning {
		return false
	}
	s.spawning = true
	return true
}

// StopSpawning 标记生成循环已停止
func (s *GameSession) StopSpawning() {
	s.spawning = false
}

// Start NotStarted → Running
// 其他状态下调用返回 false 且不做任何修改
func (s *GameSession) Start() bool {
	if s.state != StateNotStarted {
		return false
	}
	s.state = StateRunning
	log.Printf("[GameSession] NotStarted -> Running (epoch=%d)", s.epoch)
	return true
}

// End 进入 Over 状态
// 已经是 Over 时返回 false（幂等，不会重复迁移）
func (s *GameSession) End() bool {
	if s.state == StateOver {
		return false
	}
	log.Printf("[GameSession] %s -> Over, final score %d", s.state, s.score.Score())
	s.state = StateOver
	s.StopSpawning()
	return true
}

// Reset 完整重置：分数归零、状态回到 NotStarted、纪元自增
func (s *GameSession) Reset() {
	s.epoch++
	s.state = StateNotStarted
	s.spawning = false
	s.score.Reset()
	log.Printf("[GameSession] Reset -> NotStarted (epoch=%d)", s.epoch)
}

// BindDisplay 重新绑定分数显示（场景重建后标签实体会更换）
func (s *GameSession) BindDisplay(display ScoreDisplay) {
	s.score.Bind(display)
}
