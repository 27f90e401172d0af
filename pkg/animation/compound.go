package animation

import "errors"

// 构造复合动画和双重动画时的参数错误
var (
	errNilSource  = errors.New("animation: 进度信号不能为 nil")
	errNilForward = errors.New("animation: 正向映射不能为 nil")
	errNilHalf    = errors.New("animation: 双重动画的两个复合动画都不能为 nil")
)

// CompoundFloat 是按方向选择映射的复合动画（浮点值）
//
// 包装一个进度信号、一个必需的正向映射和一个可选的反向映射：
//   - 状态为 Forward/Completed，或未提供反向映射时，用正向映射求值
//   - 否则（Reverse/Dismissed 且有反向映射）用反向映射求值
//
// 这样同一个运动模式可以在进入（正向）和反向退出时使用不同形状的
// 曲线，而不需要维护两套独立的信号图。
// 除对信号的只读访问外无状态，每次取值按需重新计算。
type CompoundFloat struct {
	source  Signal
	forward FloatAnimatable
	reverse FloatAnimatable // 可为 nil：反向时回退到正向映射
}

// NewCompoundFloat 创建浮点复合动画
// source 和 forward 不能为 nil；reverse 可为 nil
func NewCompoundFloat(source Signal, forward, reverse FloatAnimatable) (*CompoundFloat, error) {
	if source == nil {
		return nil, errNilSource
	}
	if forward == nil {
		return nil, errNilForward
	}
	return &CompoundFloat{source: source, forward: forward, reverse: reverse}, nil
}

// Value 返回当前复合值
func (c *CompoundFloat) Value() float64 {
	if c.useForward() {
		return c.forward.Evaluate(c.source.Value())
	}
	return c.reverse.Evaluate(c.source.Value())
}

// useForward 判断当前应使用正向映射还是反向映射
func (c *CompoundFloat) useForward() bool {
	if c.reverse == nil {
		return true
	}
	switch s := c.source.Status(); s {
	case StatusForward, StatusCompleted:
		return true
	case StatusReverse, StatusDismissed:
		return false
	default:
		s.mustValid()
		return true
	}
}

// CompoundOffset 是按方向选择映射的复合动画（位移值）
// 语义与 CompoundFloat 完全相同
type CompoundOffset struct {
	source  Signal
	forward OffsetAnimatable
	reverse OffsetAnimatable
}

// NewCompoundOffset 创建位移复合动画
func NewCompoundOffset(source Signal, forward, reverse OffsetAnimatable) (*CompoundOffset, error) {
	if source == nil {
		return nil, errNilSource
	}
	if forward == nil {
		return nil, errNilForward
	}
	return &CompoundOffset{source: source, forward: forward, reverse: reverse}, nil
}

// Value 返回当前复合位移
func (c *CompoundOffset) Value() Offset {
	if c.reverse == nil {
		return c.forward.Evaluate(c.source.Value())
	}
	switch s := c.source.Status(); s {
	case StatusForward, StatusCompleted:
		return c.forward.Evaluate(c.source.Value())
	case StatusReverse, StatusDismissed:
		return c.reverse.Evaluate(c.source.Value())
	default:
		s.mustValid()
		return Offset{}
	}
}
