// Package config 提供运动展示程序的配置文件加载和解析
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlaybackConfig 播放配置
type PlaybackConfig struct {
	TPS           int     `yaml:"tps"`            // 目标 TPS（Ticks Per Second）
	DurationScale float64 `yaml:"duration_scale"` // 过渡时长缩放
}

// PatternConfig 单个运动模式的覆盖参数
// 零值字段使用模式的内置默认值
type PatternConfig struct {
	DurationMs        int     `yaml:"duration_ms"`         // 正向时长（毫秒）
	ReverseDurationMs int     `yaml:"reverse_duration_ms"` // 反向时长（毫秒），0 表示与正向相同
	OffsetPx          float64 `yaml:"offset_px"`           // 共享轴位移距离（像素）
	EnterScale        float64 `yaml:"enter_scale"`         // 入场起始缩放
	FillColor         string  `yaml:"fill_color"`          // 底色，"#RRGGBB" 格式，空表示不替换
}

// MotionConfig 展示程序完整配置
type MotionConfig struct {
	Window   WindowConfig             `yaml:"window"`
	Playback PlaybackConfig           `yaml:"playback"`
	Patterns map[string]PatternConfig `yaml:"patterns"` // 以模式名为键，如 "fade-through"
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *MotionConfig {
	return &MotionConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Motion Showcase",
		},
		Playback: PlaybackConfig{
			TPS:           60,
			DurationScale: 1.0,
		},
		Patterns: map[string]PatternConfig{},
	}
}

// LoadConfig 从文件加载配置
func LoadConfig(configPath string) (*MotionConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config MotionConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 设置默认值
	if config.Window.Width == 0 {
		config.Window.Width = 800
	}
	if config.Window.Height == 0 {
		config.Window.Height = 600
	}
	if config.Window.Title == "" {
		config.Window.Title = "Motion Showcase"
	}
	if config.Playback.TPS == 0 {
		config.Playback.TPS = 60
	}
	if config.Playback.DurationScale == 0 {
		config.Playback.DurationScale = 1.0
	}
	if config.Patterns == nil {
		config.Patterns = map[string]PatternConfig{}
	}

	// 校验模式覆盖参数中的颜色值
	for name, pc := range config.Patterns {
		if pc.FillColor == "" {
			continue
		}
		if _, err := ParseHexColor(pc.FillColor); err != nil {
			return nil, fmt.Errorf("模式 %q 的底色无效: %w", name, err)
		}
	}

	return &config, nil
}

// Duration 返回指定模式的正向时长（秒）
// 未配置时返回 0，表示使用模式默认时长
func (c *MotionConfig) Duration(pattern string) float64 {
	pc, ok := c.Patterns[pattern]
	if !ok || pc.DurationMs <= 0 {
		return 0
	}
	return float64(pc.DurationMs) / 1000.0 * c.Playback.DurationScale
}

// ReverseDuration 返回指定模式的反向时长（秒）
// 未配置时返回 0，表示与正向相同
func (c *MotionConfig) ReverseDuration(pattern string) float64 {
	pc, ok := c.Patterns[pattern]
	if !ok || pc.ReverseDurationMs <= 0 {
		return 0
	}
	return float64(pc.ReverseDurationMs) / 1000.0 * c.Playback.DurationScale
}

// Offset 返回指定模式的位移距离（像素）
// 未配置时返回 0，表示使用模式默认值
func (c *MotionConfig) Offset(pattern string) float64 {
	pc, ok := c.Patterns[pattern]
	if !ok || pc.OffsetPx <= 0 {
		return 0
	}
	return pc.OffsetPx
}

// EnterScale 返回指定模式的入场起始缩放
// 未配置时返回 0，表示使用模式默认值
func (c *MotionConfig) EnterScale(pattern string) float64 {
	pc, ok := c.Patterns[pattern]
	if !ok || pc.EnterScale <= 0 {
		return 0
	}
	return pc.EnterScale
}

// Fill 返回指定模式的底色
// 未配置或格式非法时返回 nil
func (c *MotionConfig) Fill(pattern string) color.Color {
	pc, ok := c.Patterns[pattern]
	if !ok || pc.FillColor == "" {
		return nil
	}
	clr, err := ParseHexColor(pc.FillColor)
	if err != nil {
		return nil
	}
	return clr
}

// ParseHexColor 解析 "#RRGGBB" 格式的颜色值
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("颜色格式应为 #RRGGBB，实际为 %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%2x%2x%2x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("颜色格式应为 #RRGGBB，实际为 %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
