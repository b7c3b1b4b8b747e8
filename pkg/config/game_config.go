package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// DefaultGameConfigPath 内置游戏配置文件路径（嵌入资源）
const DefaultGameConfigPath = "data/memoris.yaml"

// validate 全局校验器实例（validator 内部缓存结构体元数据，可复用）
var validate = validator.New()

// GameConfig 游戏数据配置
//
// 配置文件位置: data/memoris.yaml
type GameConfig struct {
	Match    MatchConfig    `yaml:"match"`
	Snowfall SnowfallConfig `yaml:"snowfall"`
	Audio    AudioConfig    `yaml:"audio"`
}

// FaceConfig 卡牌牌面配置
type FaceConfig struct {
	// ID 牌面标识（如 "cat"），同一局中每个牌面出现两次
	ID string `yaml:"id" validate:"required"`
	// Name 显示名称
	Name string `yaml:"name"`
	// Color 牌面底色（#rrggbb）
	Color string `yaml:"color" validate:"required,hexcolor"`
}

// TileConfig 卡牌尺寸（逻辑像素）
type TileConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
	Margin float64 `yaml:"margin" validate:"gte=0"`
}

// MatchConfig 记忆配对游戏配置
type MatchConfig struct {
	// Faces 牌面列表，每个牌面在一局中出现两次
	Faces []FaceConfig `yaml:"faces" validate:"min=2,unique=ID,dive"`
	// Columns 棋盘列数
	Columns int `yaml:"columns" validate:"gt=0"`
	// RevealDelayMs 两张牌不匹配时翻回背面前的展示时间（毫秒）
	RevealDelayMs int `yaml:"revealDelayMs" validate:"gte=0"`
	// Tile 卡牌尺寸
	Tile TileConfig `yaml:"tile"`
	// BackColor 牌背颜色
	BackColor string `yaml:"backColor" validate:"required,hexcolor"`
}

// Range 浮点数区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange 整数区间 [Min, Max]
type IntRange struct {
	Min int `yaml:"min" validate:"gte=0,lte=255"`
	Max int `yaml:"max" validate:"gte=0,lte=255"`
}

// SnowfallConfig 雪花模拟配置
type SnowfallConfig struct {
	// Count 雪花数量
	Count int `yaml:"count" validate:"gte=0"`
	// SpreadDivisor 水平高斯分布标准差 = 宽度 / SpreadDivisor
	SpreadDivisor float64 `yaml:"spreadDivisor" validate:"gt=0"`
	// Radius 半径范围
	Radius Range `yaml:"radius"`
	// Speed 下落速度范围（像素/帧）
	Speed Range `yaml:"speed"`
	// Drift 水平摆动系数范围
	Drift Range `yaml:"drift"`
	// Shade 颜色明度范围，颜色为 rgb(shade, shade, 255)
	Shade IntRange `yaml:"shade"`
	// RespawnY 重生时的纵坐标（画面上方）
	RespawnY float64 `yaml:"respawnY" validate:"lte=0"`
	// LandingGain 每次落地使积雪峰值增加 radius * LandingGain
	LandingGain float64 `yaml:"landingGain" validate:"gte=0"`
	// ParabolaFactor 积雪抛物线宽度系数：偏移 = dx² / (width * ParabolaFactor)
	ParabolaFactor float64 `yaml:"parabolaFactor" validate:"gt=0"`
	// MaxSlowdown 接近底部时的最大减速比例
	MaxSlowdown float64 `yaml:"maxSlowdown" validate:"gte=0,lte=1"`
	// DriftWavelength 水平摆动 sin(y / DriftWavelength)
	DriftWavelength float64 `yaml:"driftWavelength" validate:"gt=0"`
	// DriftAmplitude 水平摆动幅度倍数
	DriftAmplitude float64 `yaml:"driftAmplitude" validate:"gte=0"`
	// FrameIntervalMs 模拟步进间隔（毫秒）
	FrameIntervalMs int `yaml:"frameIntervalMs" validate:"gt=0"`
	// Background 背景颜色
	Background string `yaml:"background" validate:"required,hexcolor"`
	// DriftColor 积雪颜色
	DriftColor string `yaml:"driftColor" validate:"required,hexcolor"`
}

// AudioConfig 合成音效配置
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate" validate:"gte=8000,lte=192000"`
	Volume     float64 `yaml:"volume" validate:"gte=0,lte=1"`
}

// DefaultGameConfig 返回内置默认配置
// 与 data/memoris.yaml 保持一致，配置文件缺省字段时以此为基础
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Match: MatchConfig{
			Faces: []FaceConfig{
				{ID: "cat", Name: "Cat", Color: "#f4a259"},
				{ID: "dog", Name: "Dog", Color: "#8cb369"},
				{ID: "lion", Name: "Lion", Color: "#f4e285"},
				{ID: "fox", Name: "Fox", Color: "#e76f51"},
				{ID: "monkey", Name: "Monkey", Color: "#a98467"},
				{ID: "panda", Name: "Panda", Color: "#e9ecef"},
				{ID: "raccoon", Name: "Raccoon", Color: "#adb5bd"},
				{ID: "tiger", Name: "Tiger", Color: "#ffb703"},
			},
			Columns:       4,
			RevealDelayMs: 1000,
			Tile:          TileConfig{Width: 200, Height: 280, Margin: 10},
			BackColor:     "#3d5a80",
		},
		Snowfall: SnowfallConfig{
			Count:           600,
			SpreadDivisor:   5,
			Radius:          Range{Min: 2, Max: 6},
			Speed:           Range{Min: 4, Max: 12},
			Drift:           Range{Min: -1, Max: 1},
			Shade:           IntRange{Min: 220, Max: 255},
			RespawnY:        -10,
			LandingGain:     0.1,
			ParabolaFactor:  1.5,
			MaxSlowdown:     0.9,
			DriftWavelength: 50,
			DriftAmplitude:  2,
			FrameIntervalMs: 16,
			Background:      "#000000",
			DriftColor:      "#f0f0ff",
		},
		Audio: AudioConfig{
			SampleRate: 48000,
			Volume:     0.6,
		},
	}
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 解析以默认配置为基础，文件中未出现的字段保留默认值。
// 注意：faces 列表整体替换，不与默认列表合并。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置有效性
//
// 除结构体标签规则外，还检查：
//   - 各区间 Min <= Max
//   - 牌面颜色可解析
func (c *GameConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := c.Snowfall
	ranges := []struct {
		name string
		r    Range
	}{
		{"snowfall.radius", s.Radius},
		{"snowfall.speed", s.Speed},
		{"snowfall.drift", s.Drift},
	}
	for _, rr := range ranges {
		if rr.r.Min > rr.r.Max {
			return fmt.Errorf("%w: %s range invalid: min(%.2f) > max(%.2f)",
				ErrInvalidConfig, rr.name, rr.r.Min, rr.r.Max)
		}
	}
	if s.Radius.Min < 0 || s.Speed.Min < 0 {
		return fmt.Errorf("%w: snowfall radius and speed must be non-negative", ErrInvalidConfig)
	}
	if s.Shade.Min > s.Shade.Max {
		return fmt.Errorf("%w: snowfall.shade range invalid: min(%d) > max(%d)",
			ErrInvalidConfig, s.Shade.Min, s.Shade.Max)
	}

	return nil
}

// RevealDelay 返回不匹配时的展示时长
func (m MatchConfig) RevealDelay() time.Duration {
	return time.Duration(m.RevealDelayMs) * time.Millisecond
}

// FaceIDs 返回牌面标识列表
func (m MatchConfig) FaceIDs() []string {
	ids := make([]string, len(m.Faces))
	for i, f := range m.Faces {
		ids[i] = f.ID
	}
	return ids
}

// FrameInterval 返回模拟步进间隔
func (s SnowfallConfig) FrameInterval() time.Duration {
	return time.Duration(s.FrameIntervalMs) * time.Millisecond
}

// ParseColor 将 #rrggbb 解析为不透明的 RGBA 颜色
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor 解析颜色，失败时返回洋红色作为可见的占位色
// 仅用于已经通过 Validate 的配置
func MustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return c
}
