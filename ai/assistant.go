// Package ai holds the contract between the service and the remote language
// model, plus the fixed prompts the service sends.
package ai

import (
	"context"
	"errors"
)

// ErrTransport marks failures talking to the model provider.
var ErrTransport = errors.New("assistant transport error")

const (
	// FallbackReply is used when the model answers with no text.
	FallbackReply = "عذراً، لم أستطع الحصول على رد في الوقت الحالي."
	// ConnectionErrorReply is shown to the user when a request fails.
	ConnectionErrorReply = "عذراً، واجهت مشكلة في الاتصال. حاول مرة أخرى."
)

// Assistant answers free-text messages within a per-session conversation.
type Assistant interface {
	Send(ctx context.Context, sessionID, text string) (string, error)
	Reset(sessionID string)
}
