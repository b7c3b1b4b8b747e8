//go:build !mobile

// 普通构建（go build ./... / go test ./...）只编译此文件，
// 使 mobile 包在没有 ebitenmobile 工具链时也保持可编译。
package mobile

// Dummy 与 mobile.go 中的同名函数对应
func Dummy() {}
