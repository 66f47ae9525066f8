package cli

import (
	"context"
	"time"

	"github.com/matzehuels/keygrid/pkg/observability"
)

// logHooks reports pipeline stages at debug level through the context logger.
type logHooks struct {
	observability.NoopPipelineHooks
}

func (logHooks) OnLoadComplete(ctx context.Context, path string, rows int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("load failed", "path", path, "err", err)
		return
	}
	l.Debug("load complete", "path", path, "rows", rows, "duration", d)
}

func (logHooks) OnPartition(ctx context.Context, shape string, blocks int) {
	loggerFromContext(ctx).Debug("partitioned grid", "shape", shape, "blocks", blocks)
}

func (logHooks) OnFontFallback(ctx context.Context, name string, err error) {
	loggerFromContext(ctx).Debug("font fallback", "font", name, "reason", err)
}

func (logHooks) OnExportComplete(ctx context.Context, path string, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("export failed", "path", path, "err", err)
		return
	}
	l.Debug("export complete", "path", path, "duration", d)
}
