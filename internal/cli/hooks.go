package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/basecanvas/pkg/observability"
)

// documentLogHooks logs document save and load summaries at debug level.
type documentLogHooks struct {
	observability.NoopDocumentHooks
	logger *log.Logger
}

func (h documentLogHooks) OnSaveComplete(_ context.Context, bases, outlines int, d time.Duration, err error) {
	h.logger.Debug("document saved", "bases", bases, "outlines", outlines, "took", d, "err", err)
}

func (h documentLogHooks) OnLoadComplete(_ context.Context, restored, skipped int, d time.Duration, err error) {
	h.logger.Debug("document loaded", "restored", restored, "skipped", skipped, "took", d, "err", err)
}

// outlineLogHooks logs outline lifecycle events at debug level.
type outlineLogHooks struct {
	logger *log.Logger
}

func (h outlineLogHooks) OnOutlineCreated(id, ownerID string) {
	h.logger.Debug("outline created", "id", id, "owner", ownerID)
}

func (h outlineLogHooks) OnOutlineRemoved(id string) {
	h.logger.Debug("outline removed", "id", id)
}

// RegisterHooks routes observability events to the CLI logger.
func (c *CLI) RegisterHooks() {
	observability.SetDocumentHooks(documentLogHooks{logger: c.Logger})
	observability.SetOutlineHooks(outlineLogHooks{logger: c.Logger})
}
