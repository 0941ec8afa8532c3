package alert

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/metrics"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// Messenger доставляет текст на номер и возвращает идентификатор сообщения
type Messenger interface {
	Send(ctx context.Context, phone, body string) (string, error)
}

// SentMarker фиксирует, что оповещение по записи отправлено
type SentMarker interface {
	MarkAlertSent(ctx context.Context, userID string, id uuid.UUID) error
}

// Dispatcher форматирует оповещение по записи и отправляет его
type Dispatcher struct {
	messenger Messenger
	marker    SentMarker
	logger    *logrus.Logger
}

func NewDispatcher(messenger Messenger, marker SentMarker, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		marker:    marker,
		logger:    logger,
	}
}

// Send отправляет оповещение и после успешной доставки выставляет флаг alert_sent
func (d *Dispatcher) Send(ctx context.Context, entry *models.LandDataEntry, phone string) (string, error) {
	log := d.logger.WithFields(logrus.Fields{
		"component": "alert",
		"method":    "Send",
		"entry_id":  entry.ID,
	})

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrPhoneRequired
	}
	if d.messenger == nil {
		metrics.Alerts.WithLabelValues("not_configured").Inc()
		return "", ErrSenderNotConfigured
	}

	messageID, err := d.messenger.Send(ctx, phone, FormatMessage(entry))
	if err != nil {
		log.WithError(err).Error("Failed to deliver alert")
		metrics.Alerts.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("alert: could not deliver message: %w", err)
	}
	log.WithField("message_id", messageID).Info("Alert delivered")
	metrics.Alerts.WithLabelValues("sent").Inc()

	if err := d.marker.MarkAlertSent(ctx, entry.UserID, entry.ID); err != nil {
		log.WithError(err).Error("Alert delivered but sent flag was not updated")
		return messageID, fmt.Errorf("alert: could not mark entry as alerted: %w", err)
	}
	entry.AlertSent = true
	return messageID, nil
}

// FormatMessage собирает текст оповещения. Строки риска наводнения и засухи
// добавляются только для уровней выше низкого.
func FormatMessage(entry *models.LandDataEntry) string {
	var b strings.Builder
	b.WriteString("🚨 *GaiaGuard Alert*\n\n")
	fmt.Fprintf(&b, "Location: %s\n", entry.LocationName)
	if entry.DegradationLevel != "" {
		fmt.Fprintf(&b, "Status: %s\n", entry.DegradationLevel)
	}
	if entry.FloodRisk != "" && entry.FloodRisk != models.RiskLow {
		fmt.Fprintf(&b, "Flood Risk: %s\n", entry.FloodRisk)
	}
	if entry.DroughtRisk != "" && entry.DroughtRisk != models.RiskLow {
		fmt.Fprintf(&b, "Drought Risk: %s\n", entry.DroughtRisk)
	}
	if entry.Recommendation != "" {
		fmt.Fprintf(&b, "\nRecommendation: %s\n", entry.Recommendation)
	}
	b.WriteString("\nStay safe and take early action. 🌿")
	return b.String()
}
