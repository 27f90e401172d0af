package animation

// 双重动画：把"自身的进出场动画"和"被新内容覆盖的动画"两条时间线
// 合并为一个最终属性值，调用方不需要为每种模式组合手写合成公式。
//
// 三种合成规则都保持单位元：
//   - 透明度: 1 - (1-a)(1-b)，0 为单位元（任一为 1 则完全不透明）
//   - 平移:   向量和，(0,0) 为单位元
//   - 缩放:   乘积，1.0 为单位元

// DualOpacity 合并两条透明度时间线
type DualOpacity struct {
	primary   *CompoundFloat
	secondary *CompoundFloat
}

// NewDualOpacity 创建透明度双重动画，两个复合动画都不能为 nil
func NewDualOpacity(primary, secondary *CompoundFloat) (*DualOpacity, error) {
	if primary == nil || secondary == nil {
		return nil, errNilHalf
	}
	return &DualOpacity{primary: primary, secondary: secondary}, nil
}

// Value 返回合成透明度: 1 - (1-primary)(1-secondary)
func (d *DualOpacity) Value() float64 {
	a := d.primary.Value()
	b := d.secondary.Value()
	return 1 - (1-a)*(1-b)
}

// DualScale 合并两条缩放时间线
type DualScale struct {
	primary   *CompoundFloat
	secondary *CompoundFloat
}

// NewDualScale 创建缩放双重动画，两个复合动画都不能为 nil
func NewDualScale(primary, secondary *CompoundFloat) (*DualScale, error) {
	if primary == nil || secondary == nil {
		return nil, errNilHalf
	}
	return &DualScale{primary: primary, secondary: secondary}, nil
}

// Value 返回合成缩放: primary * secondary
func (d *DualScale) Value() float64 {
	return d.primary.Value() * d.secondary.Value()
}

// DualTranslation 合并两条平移时间线
type DualTranslation struct {
	primary   *CompoundOffset
	secondary *CompoundOffset
}

// NewDualTranslation 创建平移双重动画，两个复合动画都不能为 nil
func NewDualTranslation(primary, secondary *CompoundOffset) (*DualTranslation, error) {
	if primary == nil || secondary == nil {
		return nil, errNilHalf
	}
	return &DualTranslation{primary: primary, secondary: secondary}, nil
}

// Value 返回合成位移: primary + secondary（向量和）
func (d *DualTranslation) Value() Offset {
	return d.primary.Value().Add(d.secondary.Value())
}
