package scene

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// testGame 在 ebiten 游戏循环内运行测试，使 ReadPixels 等操作可用
type testGame struct {
	m    *testing.M
	code int
}

func (g *testGame) Update() error {
	g.code = g.m.Run()
	return ebiten.Termination
}

func (g *testGame) Draw(screen *ebiten.Image) {}

func (g *testGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 1, 1
}

func TestMain(m *testing.M) {
	g := &testGame{m: m}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(g.code)
}
