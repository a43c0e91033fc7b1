package worker

// receipt_worker.go
// Processes ticket-receipt jobs: renders the PDF receipt for the ticket and,
// when the requesting user has an email on file, mails it as an attachment.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DoukeUCB/A-Todo-Gas/internal/infra"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReceiptWorker struct {
	tickets     repository.TicketRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewReceiptWorker(tickets repository.TicketRepository, mailer *infra.Mailer, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{tickets: tickets, mailer: mailer, storagePath: storagePath}
}

// Process renders and mails the receipt. Failures are logged and dropped;
// the ticket itself is already committed.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload TicketReceiptPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	ticketID, err := uuid.Parse(payload.TicketID)
	if err != nil {
		log.Error().Str("ticket_id", payload.TicketID).Msg("receipt_worker: bad ticket id")
		return
	}
	ticket, err := w.tickets.FindByID(ctx, ticketID)
	if err != nil || ticket == nil {
		log.Error().Err(err).Str("ticket_id", payload.TicketID).Msg("receipt_worker: ticket not found")
		return
	}

	pdfPath, err := infra.GenerateTicketPDF(ticket, w.storagePath)
	if err != nil {
		log.Error().Err(err).Int("ticket_number", ticket.TicketNumber).Msg("receipt_worker: failed to render PDF")
		return
	}

	if payload.ToEmail == "" {
		return
	}
	subject := fmt.Sprintf("QuickGasoline — Ticket #%d", ticket.TicketNumber)
	body := "Adjuntamos el comprobante de su ticket para " + ticket.StationName + "."
	if err := w.mailer.SendReceipt(payload.ToEmail, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("receipt_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Int("ticket_number", ticket.TicketNumber).Msg("receipt_worker: receipt sent")
}
