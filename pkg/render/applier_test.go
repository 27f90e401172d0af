package render

import (
	"image"
	"math"
	"testing"

	"github.com/decker502/motion/pkg/animation"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestApplyOpacity 测试透明度应用和截断
func TestApplyOpacity(t *testing.T) {
	tests := []struct {
		name     string
		alpha    float64
		expected float32
	}{
		{"完全不透明", 1.0, 1.0},
		{"半透明", 0.5, 0.5},
		{"完全透明", 0.0, 0.0},
		{"超上限截断", 1.5, 1.0},
		{"超下限截断", -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &ebiten.DrawImageOptions{}
			ApplyOpacity(op, tt.alpha)
			if got := op.ColorScale.A(); math.Abs(float64(got-tt.expected)) > 0.001 {
				t.Errorf("ColorScale.A() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

// TestApplyTranslation 测试平移应用
func TestApplyTranslation(t *testing.T) {
	op := &ebiten.DrawImageOptions{}
	ApplyTranslation(op, animation.Offset{X: 30, Y: -15})

	x, y := op.GeoM.Apply(0, 0)
	if math.Abs(x-30) > 0.001 || math.Abs(y+15) > 0.001 {
		t.Errorf("原点映射到 (%v, %v), 期望 (30, -15)", x, y)
	}
}

// TestApplyScale 测试围绕枢轴点的缩放
func TestApplyScale(t *testing.T) {
	// 围绕 (100, 100) 缩放 0.8：枢轴点自身不动
	op := &ebiten.DrawImageOptions{}
	ApplyScale(op, 0.8, 100, 100)

	x, y := op.GeoM.Apply(100, 100)
	if math.Abs(x-100) > 0.001 || math.Abs(y-100) > 0.001 {
		t.Errorf("枢轴点映射到 (%v, %v), 应保持 (100, 100)", x, y)
	}

	// 距枢轴 100 像素的点缩放后距离应为 80
	x, y = op.GeoM.Apply(200, 100)
	if math.Abs(x-180) > 0.001 || math.Abs(y-100) > 0.001 {
		t.Errorf("(200, 100) 映射到 (%v, %v), 期望 (180, 100)", x, y)
	}
}

// TestApplyScaleThenTranslation 测试缩放+平移的组合顺序
// 先缩放后平移：平移量不应被缩放
func TestApplyScaleThenTranslation(t *testing.T) {
	op := &ebiten.DrawImageOptions{}
	ApplyScale(op, 0.5, 0, 0)
	ApplyTranslation(op, animation.Offset{X: 30, Y: 0})

	x, y := op.GeoM.Apply(100, 0)
	if math.Abs(x-80) > 0.001 || math.Abs(y) > 0.001 {
		t.Errorf("(100, 0) 映射到 (%v, %v), 期望 (80, 0)", x, y)
	}
}

// TestViewport 测试滚动视口裁剪
func TestViewport(t *testing.T) {
	screen := ebiten.NewImage(100, 100)

	sub := Viewport(screen, image.Rect(10, 20, 60, 80))
	if got := sub.Bounds(); got != image.Rect(10, 20, 60, 80) {
		t.Errorf("视口边界 = %v, 期望 (10,20)-(60,80)", got)
	}

	// 超出屏幕的矩形先与屏幕求交
	sub = Viewport(screen, image.Rect(50, 50, 200, 200))
	if got := sub.Bounds(); got != image.Rect(50, 50, 100, 100) {
		t.Errorf("越界视口边界 = %v, 期望 (50,50)-(100,100)", got)
	}
}
