// Package motion 实现 Material Design 的运动模式
//
// 基于 pkg/animation 的复合/双重动画机制，提供三种共享轴过渡
// （水平、垂直、缩放轴）和两种模态淡化过渡（fade-through、
// fade-scale）。每种模式只是一张声明式参数表（见 pattern.go），
// 组合逻辑完全复用 animation 包。
package motion

import "fmt"

// Type 是运动模式选择器
type Type int

const (
	// SharedAxisHorizontal 共享轴·水平：新内容从右侧滑入，旧内容向左滑出
	SharedAxisHorizontal Type = iota
	// SharedAxisVertical 共享轴·垂直：新内容从下方滑入，旧内容向上滑出
	SharedAxisVertical
	// SharedAxisScaled 共享轴·缩放：新内容从 80% 放大进入，旧内容放大到 110% 退出
	SharedAxisScaled
	// FadeThrough 透出淡化：旧内容先淡出，新内容再淡入并轻微放大
	FadeThrough
	// FadeScale 缩放淡化：模态内容淡入并从 80% 放大；退出仅淡出
	FadeScale
)

// String 返回模式的配置名
func (t Type) String() string {
	switch t {
	case SharedAxisHorizontal:
		return "shared-axis-horizontal"
	case SharedAxisVertical:
		return "shared-axis-vertical"
	case SharedAxisScaled:
		return "shared-axis-scaled"
	case FadeThrough:
		return "fade-through"
	case FadeScale:
		return "fade-scale"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseType 从配置名解析运动模式
func ParseType(s string) (Type, error) {
	switch s {
	case "shared-axis-horizontal":
		return SharedAxisHorizontal, nil
	case "shared-axis-vertical":
		return SharedAxisVertical, nil
	case "shared-axis-scaled":
		return SharedAxisScaled, nil
	case "fade-through":
		return FadeThrough, nil
	case "fade-scale":
		return FadeScale, nil
	default:
		return 0, fmt.Errorf("motion: 未知的运动模式 %q", s)
	}
}

// DefaultDuration 返回模式的默认时长（秒）
//
// 共享轴和 fade-through 为 300ms；fade-scale 的模态进入为 150ms
// （退出时长见 DefaultReverseDuration）。
func (t Type) DefaultDuration() float64 {
	if t == FadeScale {
		return 0.15
	}
	return 0.3
}

// DefaultReverseDuration 返回模式的默认反向时长（秒）
// 0 表示与正向相同
func (t Type) DefaultReverseDuration() float64 {
	if t == FadeScale {
		return 0.075
	}
	return 0
}

// IsModal 返回模式是否为模态过渡
// 模态过渡允许省略次级信号（没有"被覆盖"的一侧）
func (t Type) IsModal() bool {
	return t == FadeThrough || t == FadeScale
}
