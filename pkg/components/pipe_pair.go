package components

import "github.com/decker502/pooattack/pkg/ecs"

// PipePairComponent 管道对节点
// 两根管道共享一个水平滚动动作，节点本身没有碰撞体
type PipePairComponent struct {
	Members    []ecs.EntityID // [下管道, 上管道]
	GapCenterY float64        // 本次生成随机得到的缺口中心
	GapHeight  float64        // 缺口高度（固定）
}

// ParentComponent 子实体挂载信息
// HierarchySystem 每帧把子实体位置同步为 父位置 + 偏移；父实体被脚本移除时子实体一并移除
type ParentComponent struct {
	Parent  ecs.EntityID
	OffsetX float64
	OffsetY float64
}
