package alert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessenger struct {
	phone string
	body  string
	sid   string
	err   error
}

func (s *stubMessenger) Send(_ context.Context, phone, body string) (string, error) {
	s.phone, s.body = phone, body
	return s.sid, s.err
}

type stubMarker struct {
	calls int
	err   error
}

func (s *stubMarker) MarkAlertSent(context.Context, string, uuid.UUID) error {
	s.calls++
	return s.err
}

func newTestDispatcher(m Messenger, marker SentMarker) *Dispatcher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewDispatcher(m, marker, logger)
}

func alertEntry() *models.LandDataEntry {
	return &models.LandDataEntry{
		ID:               uuid.New(),
		UserID:           "user-1",
		LocationName:     "Delta Basin",
		DegradationLevel: models.RiskHigh,
		FloodRisk:        models.RiskLow,
		DroughtRisk:      models.RiskModerate,
		Recommendation:   "Plant cover crops.",
	}
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage(alertEntry())

	expected := "🚨 *GaiaGuard Alert*\n\n" +
		"Location: Delta Basin\n" +
		"Status: high\n" +
		"Drought Risk: moderate\n" +
		"\nRecommendation: Plant cover crops.\n" +
		"\nStay safe and take early action. 🌿"
	assert.Equal(t, expected, msg)
	assert.NotContains(t, msg, "Flood Risk")
}

func TestDispatcher_Send_Success(t *testing.T) {
	// Подготовка
	messenger := &stubMessenger{sid: "SM42"}
	marker := &stubMarker{}
	d := newTestDispatcher(messenger, marker)
	entry := alertEntry()

	// Действие
	sid, err := d.Send(context.Background(), entry, " +251900000000 ")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "SM42", sid)
	assert.Equal(t, "+251900000000", messenger.phone)
	assert.Contains(t, messenger.body, "Location: Delta Basin")
	assert.Equal(t, 1, marker.calls)
	assert.True(t, entry.AlertSent)
}

func TestDispatcher_Send_PhoneRequired(t *testing.T) {
	messenger := &stubMessenger{}
	d := newTestDispatcher(messenger, &stubMarker{})

	_, err := d.Send(context.Background(), alertEntry(), "  ")

	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.Empty(t, messenger.body)
}

func TestDispatcher_Send_NoMessenger(t *testing.T) {
	d := newTestDispatcher(nil, &stubMarker{})

	_, err := d.Send(context.Background(), alertEntry(), "+1")

	assert.ErrorIs(t, err, ErrSenderNotConfigured)
}

func TestDispatcher_Send_ProviderRejected(t *testing.T) {
	// Подготовка
	messenger := &stubMessenger{err: &DeliveryError{StatusCode: 400, Code: CodeSenderNotConfigured, Message: "Channel not found"}}
	marker := &stubMarker{}
	d := newTestDispatcher(messenger, marker)
	entry := alertEntry()

	// Действие
	_, err := d.Send(context.Background(), entry, "+1")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSenderNotConfigured)
	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, "Channel not found (code 63007)", deliveryErr.Reason())
	assert.Equal(t, 0, marker.calls)
	assert.False(t, entry.AlertSent)
}

func TestDispatcher_Send_MarkFailure(t *testing.T) {
	markErr := fmt.Errorf("db unavailable")
	d := newTestDispatcher(&stubMessenger{sid: "SM1"}, &stubMarker{err: markErr})
	entry := alertEntry()

	sid, err := d.Send(context.Background(), entry, "+1")

	assert.Equal(t, "SM1", sid)
	assert.ErrorIs(t, err, markErr)
	assert.False(t, entry.AlertSent)
}

func TestDeliveryError_Reason(t *testing.T) {
	tests := []struct {
		err  *DeliveryError
		want string
	}{
		{&DeliveryError{StatusCode: 400, Code: 21211, Message: "Invalid 'To' Phone Number"}, "Invalid 'To' Phone Number (code 21211)"},
		{&DeliveryError{StatusCode: 401, Message: "Authenticate"}, "Authenticate"},
		{&DeliveryError{StatusCode: 400, Code: 21610}, "provider error code 21610"},
		{&DeliveryError{StatusCode: 503}, "provider returned status 503"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Reason())
	}
	assert.False(t, errors.Is(&DeliveryError{Code: 21211}, ErrSenderNotConfigured))
}
