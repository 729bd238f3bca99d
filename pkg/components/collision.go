package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于物理系统检测实体之间的接触（如子弹与管道、小鸟与地面）
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（点）
	Height  float64 // 碰撞盒高度（点）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量，正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量，正值向上偏移
}
