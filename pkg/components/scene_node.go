package components

// SceneNodeComponent 标记场景根节点
// 场景级别的脚本动作（管道生成循环、结束后延时重置）挂在该实体上
type SceneNodeComponent struct{}

// BirdComponent 标记玩家角色
type BirdComponent struct{}
