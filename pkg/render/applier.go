// Package render 提供视觉属性应用器
//
// 把动画引擎算出的属性值（透明度、平移、缩放）写入 ebiten 的
// DrawImageOptions，以及滚动视口（sliver）场景下的裁剪辅助。
// 应用器本身不做插值，只负责把最终值落到渲染参数上。
package render

import (
	"image"

	"github.com/decker502/motion/pkg/animation"
	"github.com/hajimehoshi/ebiten/v2"
)

// ApplyOpacity 把透明度应用到绘制参数
// alpha 超出 [0, 1] 的部分会被截断
func ApplyOpacity(op *ebiten.DrawImageOptions, alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
}

// ApplyTranslation 把平移应用到绘制参数
func ApplyTranslation(op *ebiten.DrawImageOptions, offset animation.Offset) {
	op.GeoM.Translate(offset.X, offset.Y)
}

// ApplyScale 以 (pivotX, pivotY) 为中心把等比缩放应用到绘制参数
//
// 注意调用顺序：缩放应在平移之前应用，否则平移量也会被缩放。
func ApplyScale(op *ebiten.DrawImageOptions, scale, pivotX, pivotY float64) {
	op.GeoM.Translate(-pivotX, -pivotY)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pivotX, pivotY)
}

// Viewport 返回屏幕上指定矩形的裁剪子图
//
// 用于嵌在滚动列表里的过渡内容（sliver 场景）：在子图上使用
// Apply* 系列函数，动画语义与整屏渲染完全一致，只是绘制被限制
// 在视口矩形内。矩形会先与屏幕边界求交。
func Viewport(screen *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	return screen.SubImage(rect.Intersect(screen.Bounds())).(*ebiten.Image)
}
