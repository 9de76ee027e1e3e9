package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/snapcircle/internal/config"
	"github.com/philipparndt/snapcircle/internal/interaction"
	"github.com/philipparndt/snapcircle/pkg/watcher"
)

// ConfigState holds the active configuration and hot reload state
type ConfigState struct {
	path        string               // Config file, empty when running on defaults
	current     config.Config        // Configuration in effect
	fileWatcher *watcher.FileWatcher // Watches path for changes
	needsReload atomic.Bool          // Set by the watcher, consumed by the frame loop
	reloads     int                  // Number of successful reloads
}

// PointerState holds mouse related state
type PointerState struct {
	tracker interaction.Tracker
	hovered interaction.Handle // Handle under the pointer this frame
	cursor  int32              // Mouse cursor currently set
}

// UIState holds HUD state
type UIState struct {
	font        rl.Font
	verbose     bool      // Print gesture transitions to stdout
	status      string    // Transient message in the bottom-left corner
	statusUntil time.Time // When the status message disappears
}
