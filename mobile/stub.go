//go:build !mobile

// Package mobile 的桌面端占位
//
// 普通构建（go build ./...）不带 mobile 标签，ebiten/v2/mobile 无法链接，
// 这里只保留导出符号，真正的绑定入口在 mobile.go。
package mobile

// Dummy 与移动端同名的空函数，保证两种构建下包的导出符号一致
func Dummy() {}
