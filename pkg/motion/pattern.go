package motion

import "github.com/decker502/motion/pkg/animation"

// 运动模式参数表
//
// 每个变体一行参数，组合机制（复合映射选择、双重合成）对所有
// 变体完全相同；变体之间只有插值端点和曲线不同。查表代替分支，
// 避免在各组件里重复 switch。

// 默认视觉参数（Material motion 规范值）
const (
	// sharedAxisOffset 共享轴位移距离（像素）
	sharedAxisOffset = 30.0
	// fadeOutPortion 淡出占整条时间线的前段比例
	fadeOutPortion = 0.3
	// sharedAxisScaleIn / sharedAxisScaleOut 缩放轴的进出场缩放端点
	sharedAxisScaleIn  = 0.80
	sharedAxisScaleOut = 1.10
	// fadeThroughScaleIn 透出淡化的入场起始缩放
	fadeThroughScaleIn = 0.92
	// fadeScaleScaleIn 缩放淡化的入场起始缩放
	fadeScaleScaleIn = 0.80
)

// 共享的曲线常量：入场淡入压缩在后 70%（减速），
// 退场淡出压缩在前 30%（加速）。反向运行时使用镜像形状。
var (
	fadeInCurve         = animation.Chain(animation.CurveDecelerate, animation.Interval(fadeOutPortion, 1.0))
	fadeOutCurve        = animation.Chain(animation.CurveAccelerate, animation.Interval(0.0, fadeOutPortion))
	fadeInReverseCurve  = animation.Chain(animation.Flip(animation.CurveAccelerate), animation.Interval(0.0, fadeOutPortion))
	fadeOutReverseCurve = animation.Chain(animation.Flip(animation.CurveDecelerate), animation.Interval(1.0-fadeOutPortion, 1.0))
)

// pattern 是单个变体的参数表项
//
// enter* 由主信号驱动（自身的进出场），exit* 由次级信号驱动
// （被新内容覆盖）。*Reverse 为 nil 时反向运行回退到正向映射。
// 字段为 nil 表示该模式不动画对应属性。
type pattern struct {
	// 透明度（0 = 不可见，1 = 完全可见）
	enterFade        animation.FloatAnimatable
	enterFadeReverse animation.FloatAnimatable
	exitFade         animation.FloatAnimatable
	exitFadeReverse  animation.FloatAnimatable

	// 平移：进出场共用同一条路径，无需反向映射
	enterOffset animation.OffsetAnimatable
	exitOffset  animation.OffsetAnimatable

	// 缩放
	enterScale        animation.FloatAnimatable
	enterScaleReverse animation.FloatAnimatable
	exitScale         animation.FloatAnimatable

	// requireSecondary 为 true 时必须提供真实的次级信号
	requireSecondary bool
}

// 共享轴模式的公共淡化参数
var (
	sharedFadeIn         = animation.FloatTween{Begin: 0, End: 1, Curve: fadeInCurve}
	sharedFadeInReverse  = animation.FloatTween{Begin: 0, End: 1, Curve: fadeInReverseCurve}
	sharedFadeOut        = animation.FloatTween{Begin: 1, End: 0, Curve: fadeOutCurve}
	sharedFadeOutReverse = animation.FloatTween{Begin: 1, End: 0, Curve: fadeOutReverseCurve}
)

// buildPattern 构造变体的参数表项
//
// offsetPx 和 scaleIn 为可调参数，传 0 使用该变体的 Material
// 默认值。未知变体返回 false。
func buildPattern(typ Type, offsetPx, scaleIn float64) (pattern, bool) {
	if offsetPx <= 0 {
		offsetPx = sharedAxisOffset
	}

	switch typ {
	case SharedAxisHorizontal, SharedAxisVertical:
		axis := animation.Offset{X: offsetPx}
		if typ == SharedAxisVertical {
			axis = animation.Offset{Y: offsetPx}
		}
		return pattern{
			enterFade:        sharedFadeIn,
			enterFadeReverse: sharedFadeInReverse,
			exitFade:         sharedFadeOut,
			exitFadeReverse:  sharedFadeOutReverse,
			enterOffset:      animation.OffsetTween{Begin: axis, Curve: animation.CurveStandard},
			exitOffset: animation.OffsetTween{
				End:   animation.Offset{X: -axis.X, Y: -axis.Y},
				Curve: animation.CurveStandard,
			},
			requireSecondary: true,
		}, true

	case SharedAxisScaled:
		if scaleIn <= 0 {
			scaleIn = sharedAxisScaleIn
		}
		return pattern{
			enterFade:        sharedFadeIn,
			enterFadeReverse: sharedFadeInReverse,
			exitFade:         sharedFadeOut,
			exitFadeReverse:  sharedFadeOutReverse,
			enterScale: animation.FloatTween{
				Begin: scaleIn, End: 1.0, Curve: animation.CurveStandard,
			},
			// 反向（返回上一级）时从放大侧收回
			enterScaleReverse: animation.FloatTween{
				Begin: sharedAxisScaleOut, End: 1.0, Curve: animation.CurveStandard,
			},
			exitScale: animation.FloatTween{
				Begin: 1.0, End: sharedAxisScaleOut, Curve: animation.CurveStandard,
			},
			requireSecondary: true,
		}, true

	case FadeThrough:
		if scaleIn <= 0 {
			scaleIn = fadeThroughScaleIn
		}
		return pattern{
			enterFade:        sharedFadeIn,
			enterFadeReverse: sharedFadeInReverse,
			exitFade:         sharedFadeOut,
			exitFadeReverse:  sharedFadeOutReverse,
			// 入场伴随轻微放大；退出仅淡出以突出离场内容（无反向缩放）
			enterScale: animation.FloatTween{
				Begin: scaleIn, End: 1.0,
				Curve: animation.Chain(animation.CurveDecelerate, animation.Interval(fadeOutPortion, 1.0)),
			},
		}, true

	case FadeScale:
		if scaleIn <= 0 {
			scaleIn = fadeScaleScaleIn
		}
		return pattern{
			// 模态淡入压缩在前 30% 内线性完成
			enterFade:        animation.FloatTween{Begin: 0, End: 1, Curve: animation.Interval(0.0, fadeOutPortion)},
			enterFadeReverse: animation.FloatTween{Begin: 0, End: 1, Curve: animation.Interval(0.0, fadeOutPortion)},
			// 缩放只有入场映射：退出刻意仅淡出（无反向缩放）
			enterScale: animation.FloatTween{
				Begin: scaleIn, End: 1.0, Curve: animation.CurveDecelerate,
			},
		}, true
	}

	return pattern{}, false
}
