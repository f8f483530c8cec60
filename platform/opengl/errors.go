package opengl

import "fmt"

// Error carries an OpenGL error code
type Error struct {
	Call string
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Call, codeName(e.Code))
}

func codeName(code uint32) string {
	switch code {
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("GL error 0x%04X", code)
	}
}

// maxPendingErrors bounds draining, a lost context reports errors forever
const maxPendingErrors = 16

// drainErrors reads pending error codes until next reports none and
// returns how many were discarded
func drainErrors(next func() uint32) int {
	count := 0
	for count < maxPendingErrors && next() != 0 {
		count++
	}
	return count
}
