package gpu

import (
	"log/slog"

	"github.com/gogpu/g3d"
)

// slogger returns the module logger. All logging in internal/gpu goes
// through this function.
func slogger() *slog.Logger { return g3d.Logger() }
