package components

// PositionComponent 存储实体中心的世界坐标
// 世界坐标原点在屏幕左下角，Y 轴向上；渲染时再翻转到屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体速度（点/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
