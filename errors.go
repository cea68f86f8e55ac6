package isoterra

import (
	"fmt"
)

// MissingTileError means an atlas descriptor supplied no tiles for a
// block that requires at least one. Every block except Empty must have a
// tile to draw it with; Empty is exempt since it is never drawn.
type MissingTileError struct {
	Block Block
}

func (e MissingTileError) Error() string {
	return fmt.Sprintf("no tiles supplied for required block %q", string(e.Block))
}
