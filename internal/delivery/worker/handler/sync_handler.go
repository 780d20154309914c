// Package handler turns queue messages into synchronization runs.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "locator/internal/delivery/context"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SyncMessage is the JSON body of a synchronization trigger. An empty body is accepted.
type SyncMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Reason    string `json:"reason,omitempty"`
}

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether err should trigger a redelivery
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// SyncHandlerParams holds dependencies for the SyncHandler
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// SyncHandler runs one spreadsheet synchronization per message
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// Handle processes one message. A nil result means the message is done,
// a retryable error asks for redelivery and any other error rejects it.
func (h *SyncHandler) Handle(ctx context.Context, messageID string, body []byte) error {
	var msg SyncMessage
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &msg); err != nil {
			h.logger.Error("[Worker] Failed to parse sync message",
				slog.String("message_id", messageID),
				slog.Any("error", err),
			)

			return errors.Wrap(err, "decode sync message")
		}
	}

	requestID := extractRequestID(messageID, &msg)
	ctx, reqLogger := deliverycontext.Scoped(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing sync message", slog.String("reason", msg.Reason))

	report, err := h.syncUC.SynchronizeFromSource(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSyncInProgress) {
			reqLogger.Info("[Worker] Synchronization already running, message coalesced")

			return nil
		}

		if errors.IsAny(err, domainerrors.ErrStoreUnavailable, context.DeadlineExceeded) {
			err = newRetryableError(err)
		}

		reqLogger.Error("[Worker] Synchronization failed",
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryable(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Synchronization finished",
		slog.Int("inserted", report.Inserted),
		slog.Int("updated", report.Updated),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("failed", len(report.Failed)),
	)

	return nil
}

// extractRequestID prefers the payload field, then the AMQP message id, then a fresh UUID
func extractRequestID(messageID string, msg *SyncMessage) string {
	if msg.RequestID != "" {
		return msg.RequestID
	}

	if messageID != "" {
		return messageID
	}

	return uuid.New().String()
}
