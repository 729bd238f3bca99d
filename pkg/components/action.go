package components

// ActionType 脚本动作原语类型
type ActionType int

const (
	// ActionMoveBy 在 Duration 秒内线性平移 (DX, DY)
	ActionMoveBy ActionType = iota
	// ActionWait 等待 Duration 秒
	ActionWait
	// ActionRun 执行回调（瞬时）
	ActionRun
	// ActionRemoveSelf 移除动作所属实体（瞬时），之后的动作不再执行
	ActionRemoveSelf
	// ActionSequence 依次执行 Children
	ActionSequence
	// ActionRepeatForever 无限重复 Children[0]
	ActionRepeatForever
)

// Action 声明式脚本动作（纯数据，可被多个实体共享）
// 运行时进度保存在 ActionState 中，Action 本身不会被修改
type Action struct {
	Type     ActionType
	DX, DY   float64
	Duration float64
	Callback func()
	Children []*Action
}

// MoveBy 构造平移动作
func MoveBy(dx, dy, duration float64) *Action {
	return &Action{Type: ActionMoveBy, DX: dx, DY: dy, Duration: duration}
}

// Wait 构造等待动作
func Wait(duration float64) *Action {
	return &Action{Type: ActionWait, Duration: duration}
}

// Run 构造回调动作
func Run(callback func()) *Action {
	return &Action{Type: ActionRun, Callback: callback}
}

// RemoveSelf 构造自移除动作
func RemoveSelf() *Action {
	return &Action{Type: ActionRemoveSelf}
}

// Sequence 构造顺序动作
func Sequence(actions ...*Action) *Action {
	return &Action{Type: ActionSequence, Children: actions}
}

// RepeatForever 构造无限循环动作
func RepeatForever(action *Action) *Action {
	return &Action{Type: ActionRepeatForever, Children: []*Action{action}}
}

// ActionState 动作运行时进度
type ActionState struct {
	Action  *Action
	Elapsed float64 // MoveBy/Wait 已经过时间
	MovedX  float64 // MoveBy 已施加的位移（完成时补齐误差）
	MovedY  float64
	Index   int          // Sequence 当前子动作下标
	Child   *ActionState // Sequence/RepeatForever 当前子动作进度
}

// ActionRun 一个正在运行的动作实例
type ActionRun struct {
	Key     string // 可选名称，便于按名称取消（如 "spawn"）
	Epoch   uint64 // 创建时的重置纪元；纪元不一致的动作会被丢弃
	State   *ActionState
	Stopped bool // 已完成或被取消，下一次整理时移出列表
}

// NewActionRun 创建动作实例
func NewActionRun(key string, action *Action, epoch uint64) *ActionRun {
	return &ActionRun{
		Key:   key,
		Epoch: epoch,
		State: &ActionState{Action: action},
	}
}

// ActionComponent 实体上正在运行的脚本动作列表
// 每个动作独立推进，互不影响
type ActionComponent struct {
	Runs []*ActionRun
}
