package main

import (
	"bytes"
	"testing"
	"time"

	"support-chat/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRenderHistory(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderHistory(&out, []domain.Message{{
		ID:         uuid.New(),
		SessionID:  uuid.New(),
		SenderID:   domain.SystemSender,
		SenderType: domain.SystemParticipant,
		Content:    "File attached: payment_error.png",
		CreatedAt:  time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		Type:       domain.FileMessage,
	}})

	req.Contains(out.String(), "SENDER TYPE")
	req.Contains(out.String(), "10:20:30.000")
	req.Contains(out.String(), "File attached: payment_error.png")
}
