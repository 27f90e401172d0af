package motion

import (
	"fmt"
	"image/color"

	"github.com/decker502/motion/pkg/animation"
	"github.com/decker502/motion/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawFunc 绘制过渡内容
// 实现方应使用传入的 op 绘制自己（op 已含合成后的视觉属性）
type DrawFunc func(screen *ebiten.Image, op *ebiten.DrawImageOptions)

// Option 是 Transition 的可选构造参数
type Option func(*Transition)

// WithFillColor 设置底色
// 退场内容的淡出越过模式阈值后，用纯色底替代退场内容绘制，
// 避免新旧内容叠加穿帮
func WithFillColor(c color.Color) Option {
	return func(t *Transition) { t.fill = c }
}

// WithOnEnd 设置终止回调
// 每次进入终止态（dismissed/completed）触发一次
func WithOnEnd(fn func(animation.Status)) Option {
	return func(t *Transition) { t.onEnd = fn }
}

// WithOnStatusChanged 设置状态变化回调
// 每个不同的逻辑状态触发一次（含初始状态）
func WithOnStatusChanged(fn func(animation.Status)) Option {
	return func(t *Transition) { t.onStatusChanged = fn }
}

// WithOffset 覆盖共享轴的位移距离（像素）
// 传 0 或负值使用默认的 30px；对无位移的模式无效果
func WithOffset(px float64) Option {
	return func(t *Transition) { t.offsetPx = px }
}

// WithEnterScale 覆盖入场起始缩放
// 传 0 或负值使用该模式的默认值；对无缩放的模式无效果
func WithEnterScale(scale float64) Option {
	return func(t *Transition) { t.scaleIn = scale }
}

// Transition 把一种运动模式装配为可绘制的过渡效果
//
// 从主信号（自身的进出场）和次级信号（被新内容覆盖）装配出
// 透明度/平移/缩放三条双重动画，并通过内部协调器在状态变化时
// 触发回调。Transition 不驱动信号，只读取和订阅；不再使用时
// 必须调用 Dispose 注销订阅。
type Transition struct {
	typ       Type
	primary   animation.Signal
	secondary animation.Signal

	tracker *animation.Tracker

	// 双重动画；不动画的属性为 nil
	fadeAmount  *animation.DualOpacity // 合成"淡出量"：0 = 完全可见
	translation *animation.DualTranslation
	scale       *animation.DualScale

	// 退场淡出量（仅次级一侧），用于底色替换判断
	exitFadeAmount *animation.CompoundFloat

	fill color.Color

	// 参数覆盖；0 表示使用模式默认值
	offsetPx float64
	scaleIn  float64

	onStatusChanged func(animation.Status)
	onEnd           func(animation.Status)
}

// invertAnimatable 把不透明度映射转为淡出量映射（amount = 1 - opacity）
//
// 双重透明度的合成公式 1-(1-a)(1-b) 以 0 为单位元，合成的是
// "被淡掉的程度"：只要任一侧完全淡出，内容即不可见。
type invertAnimatable struct {
	inner animation.FloatAnimatable
}

func (iv invertAnimatable) Evaluate(t float64) float64 {
	return 1 - iv.inner.Evaluate(t)
}

func invert(a animation.FloatAnimatable) animation.FloatAnimatable {
	if a == nil {
		return nil
	}
	return invertAnimatable{inner: a}
}

// New 创建指定模式的过渡
//
// primary 不能为 nil。secondary 在共享轴模式下必须提供；
// 模态模式（fade-through/fade-scale）允许为 nil，此时次级一侧
// 视为恒定的 Constant(0, Dismissed)。
func New(typ Type, primary, secondary animation.Signal, opts ...Option) (*Transition, error) {
	if primary == nil {
		return nil, fmt.Errorf("motion: 主信号不能为 nil")
	}

	t := &Transition{
		typ:     typ,
		primary: primary,
	}
	for _, opt := range opts {
		opt(t)
	}

	p, ok := buildPattern(typ, t.offsetPx, t.scaleIn)
	if !ok {
		return nil, fmt.Errorf("motion: 无效的运动模式 %v", typ)
	}
	if secondary == nil {
		if p.requireSecondary {
			return nil, fmt.Errorf("motion: %v 模式需要次级信号", typ)
		}
		secondary = animation.Constant(0, animation.StatusDismissed)
	}
	t.secondary = secondary

	if err := t.assemble(p); err != nil {
		return nil, err
	}

	tracker, err := animation.NewTracker(primary, secondary, t.onStatusChanged, t.onEnd)
	if err != nil {
		return nil, err
	}
	t.tracker = tracker

	return t, nil
}

// assemble 按参数表装配三条双重动画
func (t *Transition) assemble(p pattern) error {
	// 透明度：主侧淡出量 + 次级侧淡出量
	enterAmount, err := animation.NewCompoundFloat(t.primary, invert(p.enterFade), invert(p.enterFadeReverse))
	if err != nil {
		return err
	}

	exitOpacity := p.exitFade
	exitOpacityReverse := p.exitFadeReverse
	if exitOpacity == nil {
		// 该模式没有退场一侧：次级贡献恒为 0（单位元）
		exitOpacity = animation.FloatTween{Begin: 1, End: 1}
		exitOpacityReverse = nil
	}
	exitAmount, err := animation.NewCompoundFloat(t.secondary, invert(exitOpacity), invert(exitOpacityReverse))
	if err != nil {
		return err
	}
	t.exitFadeAmount = exitAmount

	if t.fadeAmount, err = animation.NewDualOpacity(enterAmount, exitAmount); err != nil {
		return err
	}

	// 平移：任一侧有位移参数时装配
	if p.enterOffset != nil || p.exitOffset != nil {
		enterOff := p.enterOffset
		if enterOff == nil {
			enterOff = animation.OffsetTween{}
		}
		exitOff := p.exitOffset
		if exitOff == nil {
			exitOff = animation.OffsetTween{}
		}
		po, err := animation.NewCompoundOffset(t.primary, enterOff, nil)
		if err != nil {
			return err
		}
		so, err := animation.NewCompoundOffset(t.secondary, exitOff, nil)
		if err != nil {
			return err
		}
		if t.translation, err = animation.NewDualTranslation(po, so); err != nil {
			return err
		}
	}

	// 缩放：任一侧有缩放参数时装配（1.0 为单位元）
	if p.enterScale != nil || p.exitScale != nil {
		enterScale := p.enterScale
		if enterScale == nil {
			enterScale = animation.FloatTween{Begin: 1, End: 1}
		}
		exitScale := p.exitScale
		if exitScale == nil {
			exitScale = animation.FloatTween{Begin: 1, End: 1}
		}
		ps, err := animation.NewCompoundFloat(t.primary, enterScale, p.enterScaleReverse)
		if err != nil {
			return err
		}
		ss, err := animation.NewCompoundFloat(t.secondary, exitScale, nil)
		if err != nil {
			return err
		}
		if t.scale, err = animation.NewDualScale(ps, ss); err != nil {
			return err
		}
	}

	return nil
}

// Type 返回过渡的运动模式
func (t *Transition) Type() Type {
	return t.typ
}

// Status 返回当前组合逻辑状态
func (t *Transition) Status() animation.Status {
	return t.tracker.Status()
}

// Opacity 返回当前合成透明度（0 = 不可见，1 = 完全可见）
func (t *Transition) Opacity() float64 {
	return 1 - t.fadeAmount.Value()
}

// Translation 返回当前合成位移；模式不含位移时为零位移
func (t *Transition) Translation() animation.Offset {
	if t.translation == nil {
		return animation.Offset{}
	}
	return t.translation.Value()
}

// Scale 返回当前合成缩放；模式不含缩放时为 1.0
func (t *Transition) Scale() float64 {
	if t.scale == nil {
		return 1.0
	}
	return t.scale.Value()
}

// fillActive 判断退场内容是否应被底色替代
// 次级一侧的淡出量到达 1（即进度越过淡出区间）后激活
func (t *Transition) fillActive() bool {
	return t.fill != nil && t.exitFadeAmount.Value() >= 0.999
}

// Draw 绘制过渡内容
//
// 按"缩放 -> 平移 -> 透明度"的顺序把合成值写入绘制参数后调用
// content。退场内容完全淡出且设置了底色时，改绘纯色底。
func (t *Transition) Draw(screen *ebiten.Image, content DrawFunc) {
	if t.fillActive() {
		screen.Fill(t.fill)
		return
	}

	op := &ebiten.DrawImageOptions{}
	if t.scale != nil {
		bounds := screen.Bounds()
		pivotX := float64(bounds.Min.X+bounds.Max.X) / 2
		pivotY := float64(bounds.Min.Y+bounds.Max.Y) / 2
		render.ApplyScale(op, t.scale.Value(), pivotX, pivotY)
	}
	if t.translation != nil {
		render.ApplyTranslation(op, t.translation.Value())
	}
	render.ApplyOpacity(op, t.Opacity())

	content(screen, op)
}

// Dispose 注销内部协调器的订阅（幂等）
func (t *Transition) Dispose() {
	t.tracker.Dispose()
}
