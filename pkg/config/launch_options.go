package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 启动场景
const (
	SceneMatch = "match"
	SceneSnow  = "snow"
)

// EnvPrefix 环境变量前缀，如 MEMORIS_SCENE=snow
const EnvPrefix = "MEMORIS"

// LaunchOptions 启动参数
//
// 优先级（高到低）：命令行参数 > 环境变量（含 .env）> 选项文件 > 默认值
type LaunchOptions struct {
	// Scene 启动场景：match 或 snow
	Scene string `mapstructure:"scene" validate:"oneof=match snow"`
	// Seed 随机种子，0 表示按时间随机
	Seed uint64 `mapstructure:"seed"`
	// Verbose 启用日志输出
	Verbose bool `mapstructure:"verbose"`
	// LogLevel 日志级别
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	// Sound 启用合成音效
	Sound bool `mapstructure:"sound"`
	// SnowBackground 配对场景是否叠加飘雪背景
	SnowBackground bool `mapstructure:"snow_background"`
	// GameConfig 外部游戏配置文件路径，为空时使用内置配置
	GameConfig string `mapstructure:"game_config"`
}

// LaunchSource 启动参数来源
type LaunchSource struct {
	// EnvFile .env 文件路径，不存在时忽略
	EnvFile string
	// OptionsFile 选项文件路径（YAML），为空时不读取
	OptionsFile string
	// Overrides 命令行显式指定的参数（键为 mapstructure 名称）
	Overrides map[string]any
}

// DefaultLaunchOptions 返回默认启动参数
func DefaultLaunchOptions() LaunchOptions {
	return LaunchOptions{
		Scene:          SceneMatch,
		LogLevel:       "info",
		Sound:          true,
		SnowBackground: true,
	}
}

// LoadLaunchOptions 按优先级合并各来源的启动参数
//
// 参数:
//   - src: 参数来源
//
// 返回:
//   - LaunchOptions: 合并并校验后的参数
//   - error: 文件读取或校验失败
func LoadLaunchOptions(src LaunchSource) (LaunchOptions, error) {
	if src.EnvFile != "" {
		// .env 只补充未设置的环境变量，文件缺失不是错误
		if err := godotenv.Load(src.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return LaunchOptions{}, fmt.Errorf("failed to load env file %s: %w", src.EnvFile, err)
		}
	}

	v := viper.New()
	def := DefaultLaunchOptions()
	v.SetDefault("scene", def.Scene)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("sound", def.Sound)
	v.SetDefault("snow_background", def.SnowBackground)
	v.SetDefault("game_config", def.GameConfig)

	if src.OptionsFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(src.OptionsFile)
		if err := v.ReadInConfig(); err != nil {
			return LaunchOptions{}, fmt.Errorf("failed to read options file %s: %w", src.OptionsFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range src.Overrides {
		v.Set(key, value)
	}

	var opts LaunchOptions
	if err := v.Unmarshal(&opts); err != nil {
		return LaunchOptions{}, fmt.Errorf("failed to unmarshal launch options: %w", err)
	}
	opts.Scene = strings.ToLower(opts.Scene)
	opts.LogLevel = strings.ToLower(opts.LogLevel)

	if err := validate.Struct(&opts); err != nil {
		return LaunchOptions{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return opts, nil
}
