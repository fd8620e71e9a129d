package repository

import (
	"context"
	"errors"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// ErrTxClosed is returned by a transaction used after Commit or Rollback
var ErrTxClosed = errors.New(domain.ErrMsgTxClosed)

// SafeRollback is deferred right after Begin. After a successful Commit the
// rollback is a no-op and the closed error is swallowed; anything else is
// logged, since the caller is already returning its own error.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
