package components

// PhysicsBodyComponent 物理刚体
//
// 三组掩码含义：
//   - CategoryMask: 自身类别
//   - ContactTestMask: 与哪些类别接触时产生接触事件（仅检测，不一定有物理响应）
//   - CollisionMask: 与哪些类别发生物理碰撞（位置修正 + 速度清零）
//
// 静态刚体（Dynamic=false）不受重力和冲量影响，但仍可被脚本动作移动并参与接触检测。
type PhysicsBodyComponent struct {
	Kind            EntityKind
	CategoryMask    uint32
	ContactTestMask uint32
	CollisionMask   uint32

	Dynamic           bool    // 是否为动态刚体
	AffectedByGravity bool    // 是否受重力影响（仅动态刚体有效）
	Mass              float64 // 质量，用于冲量换算速度；<=0 视为 1
}

// WantsContact 判断两个刚体之间是否需要产生接触事件
func (b *PhysicsBodyComponent) WantsContact(other *PhysicsBodyComponent) bool {
	return b.ContactTestMask&other.CategoryMask != 0 || other.ContactTestMask&b.CategoryMask != 0
}

// CollidesWith 判断本刚体是否会被 other 物理阻挡
func (b *PhysicsBodyComponent) CollidesWith(other *PhysicsBodyComponent) bool {
	return b.CollisionMask&other.CategoryMask != 0
}
