package animation

import "fmt"

// Controller 是由帧循环驱动的具体进度信号
//
// 宿主在每个 tick 调用 Update(deltaTime) 推进进度：
//   - Forward() 后值向 1.0 推进，到达后状态变为 Completed
//   - Reverse() 后值向 0.0 回退，到达后状态变为 Dismissed
//
// 值或状态每次变化都会同步通知所有监听器。
// 与本包其余部分一致，Controller 仅限单 goroutine 使用。
type Controller struct {
	duration        float64 // 正向时长（秒）
	reverseDuration float64 // 反向时长（秒），0 表示与正向相同

	value  float64
	status Status

	listeners map[ListenerID]func()
	nextID    ListenerID
}

// NewController 创建进度控制器
//
// duration 为正向运行时长（秒），必须大于 0。
// 初始状态为 Dismissed，值为 0.0。
func NewController(duration float64) (*Controller, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("animation: 控制器时长必须大于 0，实际为 %v", duration)
	}
	return &Controller{
		duration:  duration,
		value:     0.0,
		status:    StatusDismissed,
		listeners: make(map[ListenerID]func()),
	}, nil
}

// SetReverseDuration 设置反向运行时长（秒）
// 传入 0 恢复为与正向相同；负值被忽略
func (c *Controller) SetReverseDuration(duration float64) {
	if duration < 0 {
		return
	}
	c.reverseDuration = duration
}

// Forward 开始（或继续）正向运行
// 若值已到达 1.0，直接进入 Completed 状态
func (c *Controller) Forward() {
	if c.value >= 1.0 {
		c.setState(1.0, StatusCompleted)
		return
	}
	c.setState(c.value, StatusForward)
}

// Reverse 开始（或继续）反向运行
// 若值已到达 0.0，直接进入 Dismissed 状态
func (c *Controller) Reverse() {
	if c.value <= 0.0 {
		c.setState(0.0, StatusDismissed)
		return
	}
	c.setState(c.value, StatusReverse)
}

// Update 按帧推进进度
// deltaTime 为距上次更新的时间（秒）；仅在 Forward/Reverse 状态下有效
func (c *Controller) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	switch c.status {
	case StatusForward:
		next := c.value + deltaTime/c.duration
		if next >= 1.0 {
			c.setState(1.0, StatusCompleted)
		} else {
			c.setState(next, StatusForward)
		}
	case StatusReverse:
		d := c.reverseDuration
		if d == 0 {
			d = c.duration
		}
		next := c.value - deltaTime/d
		if next <= 0.0 {
			c.setState(0.0, StatusDismissed)
		} else {
			c.setState(next, StatusReverse)
		}
	}
}

// IsRunning 返回控制器是否正在运行（非终止态）
func (c *Controller) IsRunning() bool {
	return !c.status.IsTerminal()
}

// Value 返回当前进度值
func (c *Controller) Value() float64 {
	return c.value
}

// Status 返回当前状态
func (c *Controller) Status() Status {
	return c.status
}

// AddListener 注册变更监听器
func (c *Controller) AddListener(fn func()) ListenerID {
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	return id
}

// RemoveListener 注销监听器（幂等）
func (c *Controller) RemoveListener(id ListenerID) {
	delete(c.listeners, id)
}

// setState 更新值和状态并通知监听器
// 值和状态均未变化时不通知
func (c *Controller) setState(value float64, status Status) {
	if c.value == value && c.status == status {
		return
	}
	c.value = value
	c.status = status
	c.notify()
}

// notify 通知所有监听器
// 先拷贝快照，允许监听器在回调中注销自己
func (c *Controller) notify() {
	snapshot := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		snapshot = append(snapshot, fn)
	}
	for _, fn := range snapshot {
		fn()
	}
}
