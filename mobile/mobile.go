//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.memoris -o build/android/memoris.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Memoris.xcframework -v ./mobile
//
// 移动端不嵌入 data/ 目录，游戏配置使用与 data/memoris.yaml 一致的内置默认值。
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/rs/zerolog/log"

	"github.com/decker502/memoris/pkg/app"
	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/logger"
)

func init() {
	logger.Setup(logger.Options{Level: "info", Verbose: true})

	opts := config.DefaultLaunchOptions()
	gameApp, err := app.NewApp(opts, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("游戏初始化失败")
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
