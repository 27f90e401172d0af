package animation

// Offset 表示二维位移（像素）
type Offset struct {
	X float64
	Y float64
}

// Add 返回两个位移的向量和
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// FloatAnimatable 把进度值映射为浮点数（透明度、缩放等）
type FloatAnimatable interface {
	// Evaluate 在进度 t ∈ [0, 1] 处求值
	Evaluate(t float64) float64
}

// OffsetAnimatable 把进度值映射为二维位移
type OffsetAnimatable interface {
	Evaluate(t float64) Offset
}

// FloatTween 是带缓动曲线的浮点插值
//
// Evaluate 先套用 Curve（nil 表示线性），再在 Begin 和 End 之间插值。
// FloatTween 是不可变值对象，可以作为共享常量在多个实例间复用。
type FloatTween struct {
	Begin float64
	End   float64
	Curve Curve
}

// Evaluate 在进度 t 处求值
func (tw FloatTween) Evaluate(t float64) float64 {
	if tw.Curve != nil {
		t = tw.Curve(t)
	}
	return Lerp(tw.Begin, tw.End, t)
}

// OffsetTween 是带缓动曲线的位移插值
type OffsetTween struct {
	Begin Offset
	End   Offset
	Curve Curve
}

// Evaluate 在进度 t 处求值
func (tw OffsetTween) Evaluate(t float64) Offset {
	if tw.Curve != nil {
		t = tw.Curve(t)
	}
	return Offset{
		X: Lerp(tw.Begin.X, tw.End.X, t),
		Y: Lerp(tw.Begin.Y, tw.End.Y, t),
	}
}
