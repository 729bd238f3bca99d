//go:build mobile

package utils

// IsMobile 移动端构建恒为 true
// app 据此跳过窗口尺寸恢复和 F11 全屏切换
func IsMobile() bool {
	return true
}
