package systems

import (
	"log"

	"github.com/decker502/pooattack/pkg/components"
	"github.com/decker502/pooattack/pkg/ecs"
)

// EpochSource 提供当前重置纪元
// game.GameSession 实现了该接口
type EpochSource interface {
	Epoch() uint64
}

// stepResult 单步推进结果
type stepResult int

const (
	stepRunning stepResult = iota // 本帧时间已用完，动作仍在进行
	stepDone                      // 动作完成，可能还有剩余时间
	stepAborted                   // 实体被移除或纪元已过期，立即停止
)

// ActionSystem 推进实体上的脚本动作
//
// 每个动作是一棵声明式的动作树（MoveBy / Wait / Run / RemoveSelf / Sequence / RepeatForever），
// 运行进度保存在 ActionState 中。一帧内完成的动作会把剩余时间交给下一个动作，
// 所以长时间运行的序列不会因为帧边界而累积误差。
//
// 每个动作实例在创建时记录重置纪元，纪元变化后的旧动作一律丢弃，
// 即使回调在同一帧内触发了重置也不会继续执行。
type ActionSystem struct {
	entityManager *ecs.EntityManager
	epochs        EpochSource
}

// NewActionSystem 创建脚本动作系统
func NewActionSystem(em *ecs.EntityManager, epochs EpochSource) *ActionSystem {
	return &ActionSystem{
		entityManager: em,
		epochs:        epochs,
	}
}

// RunAction 在实体上启动一个动作，按当前纪元打标
// 实体不存在或已标记删除时忽略
func (s *ActionSystem) RunAction(id ecs.EntityID, key string, action *components.Action) {
	if action == nil || !s.entityManager.IsAlive(id) {
		return
	}

	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		comp = &components.ActionComponent{}
		ecs.AddComponent(s.entityManager, id, comp)
	}
	comp.Runs = append(comp.Runs, components.NewActionRun(key, action, s.epochs.Epoch()))
}

// RemoveAllActions 取消所有实体上的所有动作
func (s *ActionSystem) RemoveAllActions() {
	for _, id := range ecs.GetEntitiesWith1[*components.ActionComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		for _, run := range comp.Runs {
			run.Stopped = true
		}
		comp.Runs = nil
	}
	log.Printf("[ActionSystem] All actions removed")
}

// RemoveActionsByKey 取消实体上指定名称的动作
func (s *ActionSystem) RemoveActionsByKey(id ecs.EntityID, key string) {
	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		return
	}
	kept := comp.Runs[:0]
	for _, run := range comp.Runs {
		if run.Key == key {
			run.Stopped = true
			continue
		}
		kept = append(kept, run)
	}
	comp.Runs = kept
}

// hasActions 判断实体上是否还有运行中的动作
func (s *ActionSystem) hasActions(id ecs.EntityID) bool {
	comp, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
	if !ok {
		return false
	}
	for _, run := range comp.Runs {
		if !run.Stopped {
			return true
		}
	}
	return false
}

// Update 推进所有动作 deltaTime 秒
func (s *ActionSystem) Update(deltaTime float64) {
	epoch := s.epochs.Epoch()

	for _, id := range ecs.GetEntitiesWith1[*components.ActionComponent](s.entityManager) {
		// 回调触发了重置，本帧剩余的动作全部属于旧纪元
		if s.epochs.Epoch() != epoch {
			return
		}
		if !s.entityManager.IsAlive(id) {
			continue
		}

		comp, _ := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		// 回调可能向同一实体追加动作，只推进本帧开始时已有的动作
		count := len(comp.Runs)
		for i := 0; i < count && i < len(comp.Runs); i++ {
			run := comp.Runs[i]
			if run.Stopped {
				continue
			}
			if run.Epoch != epoch {
				run.Stopped = true
				continue
			}
			if result, _ := s.advance(id, run, run.State, deltaTime); result != stepRunning {
				run.Stopped = true
			}
			if !s.entityManager.IsAlive(id) || s.epochs.Epoch() != epoch {
				break
			}
		}

		kept := comp.Runs[:0]
		for _, run := range comp.Runs {
			if !run.Stopped {
				kept = append(kept, run)
			}
		}
		comp.Runs = kept
	}
}

// advance 推进动作节点，返回结果和未消耗的时间
func (s *ActionSystem) advance(id ecs.EntityID, run *components.ActionRun, state *components.ActionState, dt float64) (stepResult, float64) {
	action := state.Action

	switch action.Type {
	case components.ActionMoveBy:
		return s.advanceMoveBy(id, state, dt)

	case components.ActionWait:
		return advanceTimer(state, dt)

	case components.ActionRun:
		if action.Callback != nil {
			action.Callback()
		}
		if s.aborted(id, run) {
			return stepAborted, 0
		}
		return stepDone, dt

	case components.ActionRemoveSelf:
		s.removeEntity(id)
		return stepAborted, 0

	case components.ActionSequence:
		remaining := dt
		for state.Index < len(action.Children) {
			if state.Child == nil {
				state.Child = &components.ActionState{Action: action.Children[state.Index]}
			}
			result, left := s.advance(id, run, state.Child, remaining)
			switch result {
			case stepAborted:
				return stepAborted, 0
			case stepRunning:
				return stepRunning, 0
			}
			remaining = left
			state.Index++
			state.Child = nil
		}
		return stepDone, remaining

	case components.ActionRepeatForever:
		if len(action.Children) == 0 {
			return stepDone, dt
		}
		remaining := dt
		for {
			if state.Child == nil {
				state.Child = &components.ActionState{Action: action.Children[0]}
			}
			result, left := s.advance(id, run, state.Child, remaining)
			switch result {
			case stepAborted:
				return stepAborted, 0
			case stepRunning:
				return stepRunning, 0
			}
			state.Child = nil
			// 一轮没有消耗任何时间（只含瞬时动作），留到下一帧避免死循环
			if left >= remaining {
				return stepRunning, 0
			}
			remaining = left
		}
	}

	log.Printf("[ActionSystem] Unknown action type %d on entity %d", action.Type, id)
	return stepDone, dt
}

// advanceMoveBy 线性平移，完成时按总位移补齐浮点误差
func (s *ActionSystem) advanceMoveBy(id ecs.EntityID, state *components.ActionState, dt float64) (stepResult, float64) {
	action := state.Action
	result, left := advanceTimer(state, dt)

	progress := 1.0
	if action.Duration > 0 && result == stepRunning {
		progress = state.Elapsed / action.Duration
	}

	dx := action.DX*progress - state.MovedX
	dy := action.DY*progress - state.MovedY
	state.MovedX += dx
	state.MovedY += dy

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X += dx
		pos.Y += dy
	}
	return result, left
}

// advanceTimer 推进计时类动作（Wait / MoveBy）
func advanceTimer(state *components.ActionState, dt float64) (stepResult, float64) {
	duration := state.Action.Duration
	state.Elapsed += dt
	if state.Elapsed < duration {
		return stepRunning, 0
	}
	left := state.Elapsed - duration
	state.Elapsed = duration
	return stepDone, left
}

// aborted 回调执行后检查动作是否还应继续
func (s *ActionSystem) aborted(id ecs.EntityID, run *components.ActionRun) bool {
	return run.Stopped || run.Epoch != s.epochs.Epoch() || !s.entityManager.IsAlive(id)
}

// removeEntity 移除实体及其挂载的子实体
func (s *ActionSystem) removeEntity(id ecs.EntityID) {
	for _, child := range ecs.GetEntitiesWith1[*components.ParentComponent](s.entityManager) {
		parent, _ := ecs.GetComponent[*components.ParentComponent](s.entityManager, child)
		if parent.Parent == id {
			s.entityManager.DestroyEntity(child)
		}
	}
	s.entityManager.DestroyEntity(id)
}
