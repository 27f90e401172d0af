// Package scene 提供带运动过渡的场景管理
//
// SceneManager 负责驱动场景之间的 Material 运动过渡：持有进度
// 控制器，为新旧场景各装配一个过渡（新场景走入场一侧，旧场景走
// 退场一侧），并在过渡结束后完成场景交接。
package scene

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/motion/pkg/animation"
	"github.com/decker502/motion/pkg/motion"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the active scene and drives motion transitions
// between scenes. It ensures only one scene's Update and Draw methods
// are called at any given time outside of a running transition.
type SceneManager struct {
	current  Scene
	incoming Scene

	controller *animation.Controller
	enter      *motion.Transition // incoming 场景的入场过渡
	exit       *motion.Transition // current 场景的退场过渡

	fillColor       color.Color     // 退场底色，可为 nil
	reduceMotion    bool            // 为 true 时跳过过渡直接切换
	reverseDuration float64         // 回退时长覆盖（秒），0 表示使用模式默认
	patternOpts     []motion.Option // 过渡构造的附加选项（位移、缩放覆盖）

	// 离屏缓冲：过渡期间新旧场景各渲染到自己的缓冲，再合成到屏幕
	currentBuf  *ebiten.Image
	incomingBuf *ebiten.Image
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetFillColor 设置退场底色
// 旧场景淡出越过阈值后用该颜色替代绘制；nil 表示不替换
func (sm *SceneManager) SetFillColor(c color.Color) {
	sm.fillColor = c
}

// SetReduceMotion 设置减少动态效果模式
// 开启后 TransitionTo 退化为立即切换（无障碍选项）
func (sm *SceneManager) SetReduceMotion(enabled bool) {
	sm.reduceMotion = enabled
}

// SetReverseDuration 设置回退时长覆盖（秒）
// 传 0 恢复为使用各模式的默认回退时长
func (sm *SceneManager) SetReverseDuration(duration float64) {
	if duration < 0 {
		return
	}
	sm.reverseDuration = duration
}

// SetPatternOptions 设置过渡构造的附加选项
// 应用到之后每次 TransitionTo 装配的新旧两侧过渡
func (sm *SceneManager) SetPatternOptions(opts ...motion.Option) {
	sm.patternOpts = opts
}

// SwitchTo changes the active scene immediately, without a transition.
// An in-flight transition is cancelled and torn down.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.teardown()
	sm.current = scene
}

// TransitionTo 用指定运动模式切换到新场景
//
// duration 为过渡时长（秒），传 0 使用模式默认时长。
// 没有当前场景或开启了减少动态效果时退化为立即切换。
// 过渡进行中再次调用返回错误。
func (sm *SceneManager) TransitionTo(scene Scene, typ motion.Type, duration float64) error {
	if scene == nil {
		return fmt.Errorf("scene: 目标场景不能为 nil")
	}
	if sm.IsTransitioning() {
		return fmt.Errorf("scene: 已有过渡进行中")
	}
	if sm.current == nil || sm.reduceMotion {
		sm.SwitchTo(scene)
		return nil
	}

	if duration <= 0 {
		duration = typ.DefaultDuration()
	}
	ctrl, err := animation.NewController(duration)
	if err != nil {
		return err
	}
	reverse := sm.reverseDuration
	if reverse == 0 {
		reverse = typ.DefaultReverseDuration()
	}
	ctrl.SetReverseDuration(reverse)

	// 新场景：主信号为控制器，没有"被覆盖"的一侧
	enterOpts := append([]motion.Option{}, sm.patternOpts...)
	enterOpts = append(enterOpts, motion.WithOnEnd(sm.finishTransition))
	enter, err := motion.New(typ, ctrl, animation.Constant(0, animation.StatusDismissed), enterOpts...)
	if err != nil {
		return err
	}

	// 旧场景：入场早已完成，退场由同一个控制器的次级一侧驱动
	exitOpts := append([]motion.Option{}, sm.patternOpts...)
	if sm.fillColor != nil {
		exitOpts = append(exitOpts, motion.WithFillColor(sm.fillColor))
	}
	exit, err := motion.New(typ, animation.Constant(1, animation.StatusCompleted), ctrl, exitOpts...)
	if err != nil {
		enter.Dispose()
		return err
	}

	sm.incoming = scene
	sm.controller = ctrl
	sm.enter = enter
	sm.exit = exit

	ctrl.Forward()
	log.Printf("[SceneManager] 开始过渡: %v (%.0fms)", typ, duration*1000)
	return nil
}

// Pop 反转进行中的过渡，回到旧场景
// 没有进行中的过渡时返回错误
func (sm *SceneManager) Pop() error {
	if !sm.IsTransitioning() {
		return fmt.Errorf("scene: 没有可回退的过渡")
	}
	sm.controller.Reverse()
	log.Printf("[SceneManager] 过渡反转")
	return nil
}

// IsTransitioning 返回是否有过渡正在进行
func (sm *SceneManager) IsTransitioning() bool {
	return sm.controller != nil
}

// CurrentScene 返回当前活动的场景
// 过渡期间返回旧场景（交接在过渡完成时发生）
func (sm *SceneManager) CurrentScene() Scene {
	return sm.current
}

// Update updates the active scene(s) and advances any running transition.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.controller != nil {
		// 推进可能触发 finishTransition，之后 incoming 可能已被清空
		sm.controller.Update(deltaTime)
	}

	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.incoming != nil {
		sm.incoming.Update(deltaTime)
	}
}

// Draw renders the active scene, compositing both scenes while a
// transition is running.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if !sm.IsTransitioning() {
		if sm.current != nil {
			sm.current.Draw(screen)
		}
		return
	}

	sm.ensureBuffers(screen)

	sm.currentBuf.Clear()
	sm.current.Draw(sm.currentBuf)
	sm.incomingBuf.Clear()
	sm.incoming.Draw(sm.incomingBuf)

	// 先绘制退场的旧场景，再把入场的新场景叠加在上面
	sm.exit.Draw(screen, drawBuffer(sm.currentBuf))
	sm.enter.Draw(screen, drawBuffer(sm.incomingBuf))
}

// finishTransition 过渡到达终止态时的收尾
// completed: 交接到新场景；dismissed: 保留旧场景（过渡被回退）
func (sm *SceneManager) finishTransition(status animation.Status) {
	if status == animation.StatusCompleted {
		sm.current = sm.incoming
	}
	log.Printf("[SceneManager] 过渡结束: %v", status)
	sm.teardown()
}

// teardown 释放过渡相关资源（幂等）
func (sm *SceneManager) teardown() {
	if sm.enter != nil {
		sm.enter.Dispose()
		sm.enter = nil
	}
	if sm.exit != nil {
		sm.exit.Dispose()
		sm.exit = nil
	}
	sm.controller = nil
	sm.incoming = nil
}

// ensureBuffers 按屏幕尺寸准备离屏缓冲
func (sm *SceneManager) ensureBuffers(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sm.currentBuf == nil || sm.currentBuf.Bounds().Dx() != w || sm.currentBuf.Bounds().Dy() != h {
		sm.currentBuf = ebiten.NewImage(w, h)
		sm.incomingBuf = ebiten.NewImage(w, h)
	}
}

// drawBuffer 把离屏缓冲包装为过渡内容
func drawBuffer(buf *ebiten.Image) motion.DrawFunc {
	return func(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
		screen.DrawImage(buf, op)
	}
}
