package alert

import (
	"errors"
	"fmt"
)

// CodeSenderNotConfigured - код Twilio для отправителя без настроенного канала WhatsApp
const CodeSenderNotConfigured = 63007

var (
	// ErrPhoneRequired - не указан номер получателя
	ErrPhoneRequired = errors.New("phone number is required")
	// ErrSenderNotConfigured - отправитель оповещений не настроен
	ErrSenderNotConfigured = errors.New("alert sender is not configured")
)

// DeliveryError - провайдер отклонил сообщение
type DeliveryError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("alert delivery failed: %s", e.Reason())
}

// Reason возвращает наиболее точную причину, которую сообщил провайдер
func (e *DeliveryError) Reason() string {
	switch {
	case e.Code != 0 && e.Message != "":
		return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
	case e.Message != "":
		return e.Message
	case e.Code != 0:
		return fmt.Sprintf("provider error code %d", e.Code)
	default:
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
}

// Is позволяет errors.Is(err, ErrSenderNotConfigured) для кода 63007
func (e *DeliveryError) Is(target error) bool {
	return target == ErrSenderNotConfigured && e.Code == CodeSenderNotConfigured
}
