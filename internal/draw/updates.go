package draw

import "github.com/desertthunder/hrtools/internal/models"

// ProgressUpdate represents one tick of a draw in progress.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Step    int            // Current tick, 1-based
	Total   int            // Total ticks in the draw
	Current models.Person  // Name shown by the cycling display
	Winner  *models.Person // Set on the final tick
	Done    bool           // True once the binding selection has happened
}

// sendProgress delivers an update without blocking the draw.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
