package animation

// fakeSignal 是测试用的可手动驱动的进度信号
// 支持发送冗余通知（值和状态都不变），用于验证协调器的去重逻辑
type fakeSignal struct {
	value     float64
	status    Status
	listeners map[ListenerID]func()
	nextID    ListenerID
}

func newFakeSignal(value float64, status Status) *fakeSignal {
	return &fakeSignal{
		value:     value,
		status:    status,
		listeners: make(map[ListenerID]func()),
	}
}

func (f *fakeSignal) Value() float64 { return f.value }
func (f *fakeSignal) Status() Status { return f.status }

func (f *fakeSignal) AddListener(fn func()) ListenerID {
	f.nextID++
	f.listeners[f.nextID] = fn
	return f.nextID
}

func (f *fakeSignal) RemoveListener(id ListenerID) {
	delete(f.listeners, id)
}

// set 更新值和状态并通知所有监听器
func (f *fakeSignal) set(value float64, status Status) {
	f.value = value
	f.status = status
	f.emit()
}

// emit 直接通知监听器（不改变值），用于模拟冗余通知
func (f *fakeSignal) emit() {
	for _, fn := range f.listeners {
		fn()
	}
}

// listenerCount 返回当前监听器数量
func (f *fakeSignal) listenerCount() int {
	return len(f.listeners)
}
