package glbackend

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/stevebirtles/glframe/internal/logging"
)

func enableDebugOutput() {

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugMessage, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)

	marker := "Start debugging\x00"
	gl.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 0,
		gl.DEBUG_SEVERITY_NOTIFICATION, -1, gl.Str(marker))

}

// debugMessage logs driver messages. Notifications are dropped.
func debugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {

	var level slog.Level
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		level = slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		level = slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		level = slog.LevelInfo
	default:
		return
	}

	logging.Logger().Log(context.Background(), level, "GL debug",
		"source", source, "type", gltype, "id", id, "message", message)
}
