package imgui

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/devblok/fun/core"
)

var (
	_ core.UIProvider = Provider{}
	_ core.UIContext  = (*Context)(nil)
)

func TestShadersBoxed(t *testing.T) {
	c := qt.New(t)
	for _, name := range []string{VertexShader, FragmentShader} {
		source, err := Shaders.FindString(name)
		c.Assert(err, qt.IsNil)
		c.Assert(strings.HasPrefix(source, "#version 150"), qt.IsTrue, qt.Commentf("%s", name))
	}
}

func TestProjection(t *testing.T) {
	c := qt.New(t)
	m := projection(imgui.Vec2{X: 800, Y: 600})

	topLeft := m.Mul4x1(glm.Vec4{0, 0, 0, 1})
	c.Assert(topLeft.ApproxEqual(glm.Vec4{-1, 1, 0, 1}), qt.IsTrue, qt.Commentf("%v", topLeft))

	bottomRight := m.Mul4x1(glm.Vec4{800, 600, 0, 1})
	c.Assert(bottomRight.ApproxEqual(glm.Vec4{1, -1, 0, 1}), qt.IsTrue, qt.Commentf("%v", bottomRight))
}
