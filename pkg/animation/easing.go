package animation

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/ 以及 Material Design 的标准缓动曲线。

// Curve 是缓动曲线：把时间进度映射为动画进度
// 所有 Ease* 函数都可以直接作为 Curve 使用
type Curve func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Material Design 标准曲线
//
// 三条曲线分别用于常规运动、退场加速和入场减速，
// 与 Material motion 规范中的 standard/accelerate/decelerate 一致。
var (
	// CurveStandard 标准曲线 cubic-bezier(0.4, 0.0, 0.2, 1.0)
	CurveStandard = CubicBezier(0.4, 0.0, 0.2, 1.0)
	// CurveAccelerate 加速曲线 cubic-bezier(0.4, 0.0, 1.0, 1.0)，用于退场
	CurveAccelerate = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// CurveDecelerate 减速曲线 cubic-bezier(0.0, 0.0, 0.2, 1.0)，用于入场
	CurveDecelerate = CubicBezier(0.0, 0.0, 0.2, 1.0)
)

// CubicBezier 构造三次贝塞尔缓动曲线
//
// 控制点为 (x1, y1) 和 (x2, y2)，起止点固定为 (0,0) 和 (1,1)，
// 与 CSS 的 cubic-bezier() 定义一致。
// 求解采用牛顿迭代，不收敛时退化为二分查找。
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0.0 {
			return 0.0
		}
		if t >= 1.0 {
			return 1.0
		}
		u := bezierSolve(t, x1, x2)
		return bezierAt(u, y1, y2)
	}
}

// bezierAt 计算单轴贝塞尔多项式在参数 u 处的值
func bezierAt(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

// bezierDerivativeAt 计算单轴贝塞尔多项式在参数 u 处的导数
func bezierDerivativeAt(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// bezierSolve 求解 x(u) = x 的参数 u
func bezierSolve(x, x1, x2 float64) float64 {
	// 牛顿迭代：通常 4~5 轮即可收敛
	u := x
	for i := 0; i < 8; i++ {
		diff := bezierAt(u, x1, x2) - x
		if math.Abs(diff) < 1e-7 {
			return u
		}
		d := bezierDerivativeAt(u, x1, x2)
		if math.Abs(d) < 1e-7 {
			break
		}
		u -= diff / d
	}

	// 二分查找兜底
	lo, hi := 0.0, 1.0
	u = x
	for hi-lo > 1e-7 {
		if bezierAt(u, x1, x2) < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// Interval 构造子区间限制曲线
//
// 进度在 begin 之前输出 0，在 end 之后输出 1，
// 区间内部线性归一化。用于把动画压缩到整条时间线的一段，
// 例如"淡出只发生在前 30% 的进度内"。
// 要求 0 <= begin < end <= 1。
func Interval(begin, end float64) Curve {
	return func(t float64) float64 {
		return clamp01((t - begin) / (end - begin))
	}
}

// Flip 构造方向翻转曲线：f'(t) = 1 - f(1-t)
// 用于反向运行时复用同一条曲线的镜像形状
func Flip(c Curve) Curve {
	return func(t float64) float64 {
		return 1 - c(1-t)
	}
}

// Chain 组合两条曲线：先 inner 后 outer
// 典型用法：Chain(CurveDecelerate, Interval(0.3, 1.0))
// 即先做区间限制，再套用减速曲线
func Chain(outer, inner Curve) Curve {
	return func(t float64) float64 {
		return outer(inner(t))
	}
}
