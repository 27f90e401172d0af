// Package animation 提供过渡动画的组合引擎
//
// 核心概念：
//   - Signal: 外部驱动的进度信号（值 0~1 + 状态）
//   - CompoundFloat/CompoundOffset: 按方向选择正向/反向映射的复合动画
//   - DualOpacity/DualScale/DualTranslation: 合并两条时间线的双重动画
//   - Tracker: 监听两个信号、推导逻辑状态并触发回调的协调器
//
// 所有组件均为单线程、监听器驱动：重新计算在宿主（Ebitengine 的
// Update tick）的通知回调内同步完成，不涉及后台 goroutine 和锁。
package animation

// ListenerID 是监听器的注销句柄
// AddListener 返回句柄，RemoveListener 凭句柄注销（可重复注销）
type ListenerID int

// Signal 是外部可观察的进度信号
//
// 信号由调用方（如场景切换控制器）持有和驱动，本包只读取和订阅，
// 不会修改信号本身。
type Signal interface {
	// Value 返回当前进度值，范围 [0, 1]
	Value() float64
	// Status 返回当前运行状态
	Status() Status
	// AddListener 注册变更监听器，返回用于注销的句柄
	AddListener(fn func()) ListenerID
	// RemoveListener 注销监听器，重复注销不报错
	RemoveListener(id ListenerID)
}

// constantSignal 是值和状态均固定的信号，永不通知
type constantSignal struct {
	value  float64
	status Status
}

// Constant 返回值和状态固定不变的信号
//
// 用于"另一侧没有动画"的场合，例如模态过渡中次级信号恒为
// Constant(0, StatusDismissed)，页面首屏恒为 Constant(1, StatusCompleted)。
func Constant(value float64, status Status) Signal {
	status.mustValid()
	return &constantSignal{value: clamp01(value), status: status}
}

func (c *constantSignal) Value() float64                { return c.value }
func (c *constantSignal) Status() Status                { return c.status }
func (c *constantSignal) AddListener(func()) ListenerID { return 0 }
func (c *constantSignal) RemoveListener(ListenerID)     {}

// clamp01 将值限制在 [0, 1] 范围内
func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
