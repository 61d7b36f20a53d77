package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"inventory/internal/dto"

	"github.com/rs/zerolog/log"
)

// AlertMailer is the subset of infra.Mailer the alert worker needs.
type AlertMailer interface {
	Configured() bool
	SendStockAlert(to, subject, body string) error
}

// StockAlertWorker mails low-stock alerts to a fixed recipient.
type StockAlertWorker struct {
	mailer AlertMailer
	to     string
}

func NewStockAlertWorker(mailer AlertMailer, to string) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, to: to}
}

// Process implements Handler for JobStockAlert.
func (w *StockAlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var alert dto.StockAlert
	if err := json.Unmarshal(raw, &alert); err != nil {
		// A payload that cannot decode will not decode on retry either.
		log.Error().Err(err).Msg("stock_alert_worker: invalid payload")
		return nil
	}
	if w.to == "" {
		log.Warn().Int64("product_id", alert.ProductID).Msg("stock_alert_worker: ALERT_EMAIL not set, dropping alert")
		return nil
	}

	subject, body := formatStockAlert(alert)
	if !w.mailer.Configured() {
		log.Warn().Str("to", w.to).Str("subject", subject).Msg("stock_alert_worker: SMTP not configured, alert logged only")
		return nil
	}
	if err := w.mailer.SendStockAlert(w.to, subject, body); err != nil {
		return fmt.Errorf("stock_alert_worker: send to %s: %w", w.to, err)
	}
	log.Info().Str("to", w.to).Int64("product_id", alert.ProductID).Msg("stock_alert_worker: alert sent")
	return nil
}

func formatStockAlert(a dto.StockAlert) (subject, body string) {
	subject = fmt.Sprintf("Low stock: %s (%d left)", a.ProductName, a.Remaining)
	body = fmt.Sprintf(
		"Product %q (id %d) has %d units left, below the threshold of %d.\n",
		a.ProductName, a.ProductID, a.Remaining, a.Threshold,
	)
	return subject, body
}
