package scene

import (
	"image/color"
	"testing"

	"github.com/decker502/motion/pkg/motion"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 测试用场景，记录调用次数
type stubScene struct {
	fill        color.Color
	updateCount int
	drawCount   int
}

func (s *stubScene) Update(deltaTime float64) {
	s.updateCount++
}

func (s *stubScene) Draw(screen *ebiten.Image) {
	s.drawCount++
	if s.fill != nil {
		screen.Fill(s.fill)
	}
}

// TestSwitchTo 测试立即切换场景
func TestSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.CurrentScene() != nil {
		t.Error("初始场景应为 nil")
	}

	a := &stubScene{}
	sm.SwitchTo(a)
	if sm.CurrentScene() != a {
		t.Error("SwitchTo 后当前场景应为 a")
	}
	if sm.IsTransitioning() {
		t.Error("SwitchTo 不应触发过渡")
	}

	b := &stubScene{}
	sm.SwitchTo(b)
	if sm.CurrentScene() != b {
		t.Error("再次 SwitchTo 后当前场景应为 b")
	}
}

// TestTransitionToValidation 测试过渡参数校验
func TestTransitionToValidation(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&stubScene{})

	// 目标场景为 nil
	if err := sm.TransitionTo(nil, motion.FadeThrough, 0); err == nil {
		t.Error("目标场景为 nil 应返回错误")
	}

	// 过渡进行中再次调用
	if err := sm.TransitionTo(&stubScene{}, motion.FadeThrough, 0); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}
	if err := sm.TransitionTo(&stubScene{}, motion.FadeScale, 0); err == nil {
		t.Error("过渡进行中再次 TransitionTo 应返回错误")
	}
}

// TestTransitionToNoCurrent 测试无当前场景时退化为立即切换
func TestTransitionToNoCurrent(t *testing.T) {
	sm := NewSceneManager()
	a := &stubScene{}

	if err := sm.TransitionTo(a, motion.SharedAxisHorizontal, 0); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}
	if sm.IsTransitioning() {
		t.Error("无当前场景时不应启动过渡")
	}
	if sm.CurrentScene() != a {
		t.Error("应立即切换到目标场景")
	}
}

// TestTransitionToReduceMotion 测试减少动态效果模式
func TestTransitionToReduceMotion(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&stubScene{})
	sm.SetReduceMotion(true)

	b := &stubScene{}
	if err := sm.TransitionTo(b, motion.FadeThrough, 0); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}
	if sm.IsTransitioning() {
		t.Error("减少动态效果模式不应启动过渡")
	}
	if sm.CurrentScene() != b {
		t.Error("减少动态效果模式应立即切换")
	}
}

// TestTransitionCompletes 测试过渡完成后的场景交接
func TestTransitionCompletes(t *testing.T) {
	sm := NewSceneManager()
	a := &stubScene{}
	b := &stubScene{}
	sm.SwitchTo(a)

	if err := sm.TransitionTo(b, motion.SharedAxisHorizontal, 0.3); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}
	if !sm.IsTransitioning() {
		t.Fatal("TransitionTo 后应处于过渡中")
	}

	// 过渡期间当前场景仍为旧场景
	sm.Update(0.1)
	if sm.CurrentScene() != a {
		t.Error("过渡期间当前场景应保持为 a")
	}

	// 过渡期间两个场景都应更新
	if a.updateCount == 0 || b.updateCount == 0 {
		t.Error("过渡期间新旧场景都应被更新")
	}

	// 推进到过渡结束
	for i := 0; i < 30; i++ {
		sm.Update(1.0 / 60.0)
	}
	if sm.IsTransitioning() {
		t.Error("过渡应已结束")
	}
	if sm.CurrentScene() != b {
		t.Error("过渡完成后当前场景应为 b")
	}
}

// TestTransitionDefaultDuration 测试 duration 传 0 时使用模式默认时长
func TestTransitionDefaultDuration(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&stubScene{})
	b := &stubScene{}

	if err := sm.TransitionTo(b, motion.FadeScale, 0); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}

	// fade-scale 默认 0.15s：推进 0.1s 不应结束
	sm.Update(0.1)
	if !sm.IsTransitioning() {
		t.Error("默认时长 0.15s，0.1s 后不应结束")
	}

	// 再推进 0.1s 应已结束
	sm.Update(0.1)
	if sm.IsTransitioning() {
		t.Error("0.2s 后过渡应已结束")
	}
	if sm.CurrentScene() != b {
		t.Error("过渡完成后当前场景应为 b")
	}
}

// TestPop 测试回退过渡
func TestPop(t *testing.T) {
	sm := NewSceneManager()
	a := &stubScene{}
	b := &stubScene{}
	sm.SwitchTo(a)

	// 没有过渡时 Pop 应报错
	if err := sm.Pop(); err == nil {
		t.Error("没有过渡时 Pop 应返回错误")
	}

	if err := sm.TransitionTo(b, motion.SharedAxisHorizontal, 0.3); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}

	// 推进到一半后回退
	sm.Update(0.15)
	if err := sm.Pop(); err != nil {
		t.Fatalf("Pop 失败: %v", err)
	}

	// 推进到回退结束
	for i := 0; i < 30; i++ {
		sm.Update(1.0 / 60.0)
	}
	if sm.IsTransitioning() {
		t.Error("回退应已结束")
	}
	if sm.CurrentScene() != a {
		t.Error("回退完成后当前场景应保持为 a")
	}
}

// TestSwitchToCancelsTransition 测试立即切换取消进行中的过渡
func TestSwitchToCancelsTransition(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&stubScene{})
	if err := sm.TransitionTo(&stubScene{}, motion.FadeThrough, 0.3); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}

	c := &stubScene{}
	sm.SwitchTo(c)
	if sm.IsTransitioning() {
		t.Error("SwitchTo 应取消进行中的过渡")
	}
	if sm.CurrentScene() != c {
		t.Error("SwitchTo 后当前场景应为 c")
	}
}

// TestDrawWithoutTransition 测试无过渡时直接绘制当前场景
func TestDrawWithoutTransition(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(64, 64)

	// 无场景时不应 panic
	sm.Draw(screen)

	a := &stubScene{}
	sm.SwitchTo(a)
	sm.Draw(screen)
	if a.drawCount != 1 {
		t.Errorf("当前场景绘制次数 = %d, 期望 1", a.drawCount)
	}
}

// TestDrawDuringTransition 测试过渡期间合成绘制新旧场景
func TestDrawDuringTransition(t *testing.T) {
	sm := NewSceneManager()
	a := &stubScene{fill: color.RGBA{R: 255, A: 255}}
	b := &stubScene{fill: color.RGBA{B: 255, A: 255}}
	sm.SwitchTo(a)

	if err := sm.TransitionTo(b, motion.SharedAxisHorizontal, 0.3); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}
	sm.Update(0.15)

	screen := ebiten.NewImage(64, 64)
	sm.Draw(screen)

	if a.drawCount != 1 || b.drawCount != 1 {
		t.Errorf("过渡期间新旧场景都应被绘制一次: a=%d b=%d", a.drawCount, b.drawCount)
	}
}

// TestFillColorOption 测试底色设置传递到退场过渡
func TestFillColorOption(t *testing.T) {
	sm := NewSceneManager()
	sm.SetFillColor(color.White)
	a := &stubScene{fill: color.RGBA{R: 255, A: 255}}
	b := &stubScene{}
	sm.SwitchTo(a)

	if err := sm.TransitionTo(b, motion.FadeThrough, 0.3); err != nil {
		t.Fatalf("TransitionTo 失败: %v", err)
	}

	// 推进越过淡出区间（progress > 0.3），旧场景应被底色替代
	sm.Update(0.15)
	screen := ebiten.NewImage(64, 64)
	sm.Draw(screen)

	// 新场景未填充任何颜色，合成结果应为底色而非旧场景的红色
	r, g, b2, _ := screen.At(32, 32).RGBA()
	if r != 0xffff || g != 0xffff || b2 != 0xffff {
		t.Errorf("合成像素 = (%#x, %#x, %#x), 期望白色底色", r, g, b2)
	}
}
