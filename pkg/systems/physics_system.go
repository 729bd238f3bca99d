package systems

import (
	"log"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
)

// Contact 一次接触开始事件
// 同一对实体保持重叠期间只报告一次，分离后再次重叠才会重新报告
type Contact struct {
	A, B         ecs.EntityID
	KindA, KindB components.EntityKind
}

// entityPair 无序实体对，作为活跃接触集合的键
type entityPair struct {
	low, high ecs.EntityID
}

func newEntityPair(a, b ecs.EntityID) entityPair {
	if a > b {
		a, b = b, a
	}
	return entityPair{low: a, high: b}
}

// body 一帧内参与物理计算的实体快照
type body struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	col *components.CollisionComponent
	phy *components.PhysicsBodyComponent
}

// PhysicsSystem 简化的 2D 物理世界
//
// 职责:
//   - 对受重力影响的动态刚体积分速度和位置
//   - 动态刚体与 CollisionMask 中类别的刚体发生竖直方向的阻挡（小鸟落在地面上）
//   - 检测满足 ContactTestMask 的 AABB 重叠，产生接触开始事件
//
// 接触事件写入本帧缓冲区，由 CollisionSystem 在同一帧内全部处理。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	gravity       float64 // 竖直加速度（点/秒²，向下为负）

	active   map[entityPair]struct{} // 上一帧仍在重叠的实体对
	contacts []Contact               // 本帧新产生的接触
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - gravity: 竖直重力加速度，向下为负
func NewPhysicsSystem(em *ecs.EntityManager, gravity float64) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		gravity:       gravity,
		active:        make(map[entityPair]struct{}),
	}
}

// ApplyImpulse 对动态刚体施加冲量，速度变化 = 冲量 / 质量
// 静态刚体忽略冲量
func (ps *PhysicsSystem) ApplyImpulse(id ecs.EntityID, ix, iy float64) {
	phy, ok := ecs.GetComponent[*components.PhysicsBodyComponent](ps.entityManager, id)
	if !ok || !phy.Dynamic {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, id)
	if !ok {
		return
	}

	mass := phy.Mass
	if mass <= 0 {
		mass = 1
	}
	vel.VX += ix / mass
	vel.VY += iy / mass
}

// Contacts 返回本帧产生的接触事件
func (ps *PhysicsSystem) Contacts() []Contact {
	return ps.contacts
}

// Reset 清空接触状态（场景重置时调用）
func (ps *PhysicsSystem) Reset() {
	ps.active = make(map[entityPair]struct{})
	ps.contacts = ps.contacts[:0]
}

// Update 推进物理世界一步
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ps.contacts = ps.contacts[:0]

	bodies := ps.collectBodies()
	ps.integrate(bodies, deltaTime)
	// 先检测再修正，穿透本身就是一次接触
	ps.detectContacts(bodies)
	ps.resolveCollisions(bodies)
}

// collectBodies 收集所有存活的刚体
func (ps *PhysicsSystem) collectBodies() []body {
	ids := ecs.GetEntitiesWith3[
		*components.PhysicsBodyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](ps.entityManager)

	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		if !ps.entityManager.IsAlive(id) {
			continue
		}
		phy, _ := ecs.GetComponent[*components.PhysicsBodyComponent](ps.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.entityManager, id)
		bodies = append(bodies, body{id: id, pos: pos, col: col, phy: phy})
	}
	return bodies
}

// integrate 重力与速度积分
func (ps *PhysicsSystem) integrate(bodies []body, dt float64) {
	for _, b := range bodies {
		if !b.phy.Dynamic {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, b.id)
		if !ok {
			continue
		}
		if b.phy.AffectedByGravity {
			vel.VY += ps.gravity * dt
		}
		b.pos.X += vel.VX * dt
		b.pos.Y += vel.VY * dt
	}
}

// resolveCollisions 把动态刚体推出与其发生物理碰撞的刚体
// 只做竖直方向的修正，并清零朝向障碍物的速度
func (ps *PhysicsSystem) resolveCollisions(bodies []body) {
	for _, a := range bodies {
		if !a.phy.Dynamic || a.phy.CollisionMask == components.CategoryNone {
			continue
		}
		for _, b := range bodies {
			if a.id == b.id || !a.phy.CollidesWith(b.phy) || !overlaps(a, b) {
				continue
			}

			vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, a.id)
			_, ay := center(a)
			_, by := center(b)
			if ay >= by {
				a.pos.Y = by + b.col.Height/2 + a.col.Height/2 - a.col.OffsetY
				if vel != nil && vel.VY < 0 {
					vel.VY = 0
				}
			} else {
				a.pos.Y = by - b.col.Height/2 - a.col.Height/2 - a.col.OffsetY
				if vel != nil && vel.VY > 0 {
					vel.VY = 0
				}
			}
		}
	}
}

// detectContacts 检测接触开始事件
func (ps *PhysicsSystem) detectContacts(bodies []body) {
	current := make(map[entityPair]struct{})

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if !a.phy.WantsContact(b.phy) || !overlaps(a, b) {
				continue
			}

			key := newEntityPair(a.id, b.id)
			current[key] = struct{}{}
			if _, seen := ps.active[key]; seen {
				continue
			}

			ps.contacts = append(ps.contacts, Contact{
				A: a.id, B: b.id,
				KindA: a.phy.Kind, KindB: b.phy.Kind,
			})
			log.Printf("[PhysicsSystem] Contact begin: %s(%d) <-> %s(%d)", a.phy.Kind, a.id, b.phy.Kind, b.id)
		}
	}

	ps.active = current
}

// center 返回碰撞盒中心
func center(b body) (float64, float64) {
	return b.pos.X + b.col.OffsetX, b.pos.Y + b.col.OffsetY
}

// overlaps AABB 重叠检测（边界接触也算重叠）
func overlaps(a, b body) bool {
	ax, ay := center(a)
	bx, by := center(b)
	return checkAABB(ax, ay, a.col.Width, a.col.Height, bx, by, b.col.Width, b.col.Height)
}

// checkAABB 检查两个中心对齐的矩形是否重叠
func checkAABB(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	left1, right1 := x1-w1/2, x1+w1/2
	bottom1, top1 := y1-h1/2, y1+h1/2
	left2, right2 := x2-w2/2, x2+w2/2
	bottom2, top2 := y2-h2/2, y2+h2/2

	return right1 >= left2 &&
		left1 <= right2 &&
		top1 >= bottom2 &&
		bottom1 <= top2
}
