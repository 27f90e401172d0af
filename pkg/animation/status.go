package animation

import "fmt"

// Status 表示进度信号的运行状态
//
// 一次过渡动画的生命周期：
//
//	Dismissed --Forward()--> Forward --到达 1.0--> Completed
//	Completed --Reverse()--> Reverse --到达 0.0--> Dismissed
type Status int

const (
	// StatusDismissed 动画停在起点（值为 0.0）
	StatusDismissed Status = iota
	// StatusForward 动画正向运行中（值从 0.0 向 1.0 推进）
	StatusForward
	// StatusReverse 动画反向运行中（值从 1.0 向 0.0 回退）
	StatusReverse
	// StatusCompleted 动画停在终点（值为 1.0）
	StatusCompleted
)

// String 返回状态的可读名称
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// IsTerminal 返回状态是否为终止态（Dismissed 或 Completed）
// 终止态表示过渡已在某个方向上结束
func (s Status) IsTerminal() bool {
	return s == StatusDismissed || s == StatusCompleted
}

// mustValid 校验状态值的合法性
//
// 外部信号报告未知状态属于契约违规（编程错误），无法在本地恢复，
// 直接 panic 暴露给调用方
func (s Status) mustValid() {
	if s < StatusDismissed || s > StatusCompleted {
		panic(fmt.Sprintf("animation: 非法的动画状态 %d", int(s)))
	}
}
