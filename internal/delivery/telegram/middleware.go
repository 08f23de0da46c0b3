package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// HandlerFunc handles one chat input.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed or panicking handler and tells the chat
// something went wrong. The update loop itself never sees the error.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err == nil {
				return
			}

			h.logger.Error("chat input failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			err = nil
		}()

		return fn(ctx, chatID)
	}
}
