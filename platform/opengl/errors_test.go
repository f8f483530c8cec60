package opengl

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestErrorNames(t *testing.T) {
	c := qt.New(t)
	err := &Error{Call: "gl.TexImage2D()", Code: 0x0501}
	c.Assert(err.Error(), qt.Equals, "gl.TexImage2D(): GL_INVALID_VALUE")

	err.Code = 0x1234
	c.Assert(err.Error(), qt.Equals, "gl.TexImage2D(): GL error 0x1234")
}

func TestDrainErrors(t *testing.T) {
	c := qt.New(t)
	pending := []uint32{0x0502, 0x0500}
	next := func() uint32 {
		if len(pending) == 0 {
			return 0
		}
		code := pending[0]
		pending = pending[1:]
		return code
	}
	c.Assert(drainErrors(next), qt.Equals, 2)
	c.Assert(pending, qt.HasLen, 0)
	c.Assert(drainErrors(next), qt.Equals, 0)

	stuck := func() uint32 { return 0x0505 }
	c.Assert(drainErrors(stuck), qt.Equals, maxPendingErrors)
}
