package components

// EntityKind 实体类别（标签联合）
// 取代位掩码分发：碰撞解析按无序类别对查表
type EntityKind int

const (
	// KindNone 纯视觉实体（背景、分数标签、场景节点），不参与物理
	KindNone EntityKind = iota
	// KindBird 玩家角色
	KindBird
	// KindPipe 障碍管道（管道对中的一根）
	KindPipe
	// KindGround 地面
	KindGround
	// KindBullet 玩家发射的子弹
	KindBullet
)

// 类别位掩码，与类别一一对应
const (
	CategoryNone   uint32 = 0
	CategoryBird   uint32 = 1 << 0
	CategoryPipe   uint32 = 1 << 1
	CategoryGround uint32 = 1 << 2
	CategoryBullet uint32 = 1 << 3
)

// Category 返回类别对应的位掩码
func (k EntityKind) Category() uint32 {
	switch k {
	case KindBird:
		return CategoryBird
	case KindPipe:
		return CategoryPipe
	case KindGround:
		return CategoryGround
	case KindBullet:
		return CategoryBullet
	default:
		return CategoryNone
	}
}

// String 返回类别名称（用于日志）
func (k EntityKind) String() string {
	switch k {
	case KindBird:
		return "Bird"
	case KindPipe:
		return "Pipe"
	case KindGround:
		return "Ground"
	case KindBullet:
		return "Bullet"
	default:
		return "None"
	}
}

// KindPair 无序类别对
// 通过 NewKindPair 构造，保证 {A,B} 与 {B,A} 得到同一个键
type KindPair struct {
	Low  EntityKind
	High EntityKind
}

// NewKindPair 构造规范化的无序类别对
func NewKindPair(a, b EntityKind) KindPair {
	if a > b {
		a, b = b, a
	}
	return KindPair{Low: a, High: b}
}

// KindComponent 标识实体所属类别
type KindComponent struct {
	Kind EntityKind
}
