package animation

import "errors"

// Tracker 是双重过渡动画的协调器
//
// 同时订阅主信号和次级信号，从两者的状态推导出组合逻辑状态，
// 并且只在逻辑状态变化时触发回调（单纯的进度变化不触发）：
//
//	onStatusChanged: 每个不同的逻辑状态触发一次（含构造时的初始状态）
//	onEnd:           每次进入终止态（Dismissed/Completed）触发一次；
//	                 未经过非终止态不会重复触发
//
// 因为两个信号共享同一个外部动画 tick，回调触发时保证已经看到
// 两个信号的最新值，不会出现"主信号已更新、次级信号还是旧值"的
// 撕裂读取。
//
// Dispose 注销全部订阅，可重复调用；注销后不再触发任何回调。
type Tracker struct {
	primary   Signal
	secondary Signal

	primaryID   ListenerID
	secondaryID ListenerID

	status   Status
	disposed bool

	onStatusChanged func(Status)
	onEnd           func(Status)
}

// NewTracker 创建过渡协调器
//
// primary 和 secondary 都不能为 nil（次级没有真实动画时传
// Constant(0, StatusDismissed)）。初始逻辑状态取自主信号，
// 并立即触发一次 onStatusChanged；构造时即处于终止态不视为
// "进入"终止态，不触发 onEnd。
func NewTracker(primary, secondary Signal, onStatusChanged, onEnd func(Status)) (*Tracker, error) {
	if primary == nil || secondary == nil {
		return nil, errors.New("animation: 协调器的主信号和次级信号都不能为 nil")
	}

	t := &Tracker{
		primary:         primary,
		secondary:       secondary,
		status:          deriveStatus(primary.Status()),
		onStatusChanged: onStatusChanged,
		onEnd:           onEnd,
	}

	t.primaryID = primary.AddListener(t.handleTick)
	t.secondaryID = secondary.AddListener(t.handleTick)

	if t.onStatusChanged != nil {
		t.onStatusChanged(t.status)
	}

	return t, nil
}

// Status 返回当前组合逻辑状态
func (t *Tracker) Status() Status {
	return t.status
}

// Dispose 注销两个信号上的订阅（幂等）
// 注销后协调器不再触发任何回调
func (t *Tracker) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.primary.RemoveListener(t.primaryID)
	t.secondary.RemoveListener(t.secondaryID)
}

// handleTick 信号通知回调
// 只有逻辑状态变化时才向外传播；冗余通知（状态不变）被吞掉
func (t *Tracker) handleTick() {
	if t.disposed {
		return
	}

	next := deriveStatus(t.primary.Status())
	if next == t.status {
		return
	}
	t.status = next

	if t.onStatusChanged != nil {
		t.onStatusChanged(next)
	}
	if next.IsTerminal() && t.onEnd != nil {
		t.onEnd(next)
	}
}

// deriveStatus 从主信号状态推导组合逻辑状态
//
// 主信号处于终止态（Dismissed/Completed）时直接镜像；
// 否则镜像主信号的运行方向（Forward/Reverse）。
func deriveStatus(primary Status) Status {
	switch primary {
	case StatusDismissed, StatusCompleted:
		return primary
	case StatusForward, StatusReverse:
		return primary
	default:
		primary.mustValid()
		return primary
	}
}
