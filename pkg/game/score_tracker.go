package game

import "fmt"

// ScoreDisplay 分数显示目标
// components.LabelComponent 实现了该接口
type ScoreDisplay interface {
	SetText(text string)
}

// ScoreTracker 单调递增的分数计数器
// 每次变化立即刷新绑定的显示文本
type ScoreTracker struct {
	score   int
	display ScoreDisplay
}

// NewScoreTracker 创建分数记录器，并立即刷新一次显示
func NewScoreTracker(display ScoreDisplay) *ScoreTracker {
	st := &ScoreTracker{display: display}
	st.refresh()
	return st
}

// AddPoints 增加分数
// n <= 0 时忽略，保证分数只增不减（仅 Reset 可以归零）
func (st *ScoreTracker) AddPoints(n int) {
	if n <= 0 {
		return
	}
	st.score += n
	st.refresh()
}

// Reset 分数归零
func (st *ScoreTracker) Reset() {
	st.score = 0
	st.refresh()
}

// Score 返回当前分数
func (st *ScoreTracker) Score() int {
	return st.score
}

// Text 返回显示文本，格式 "Score: {n}"
func (st *ScoreTracker) Text() string {
	return FormatScore(st.score)
}

// Bind 绑定新的显示目标并刷新
func (st *ScoreTracker) Bind(display ScoreDisplay) {
	st.display = display
	st.refresh()
}

func (st *ScoreTracker) refresh() {
	if st.display != nil {
		st.display.SetText(st.Text())
	}
}

// FormatScore 格式化分数文本
func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
