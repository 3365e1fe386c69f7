package models

import (
	"errors"
	"strings"

	"github.com/lucsky/cuid"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrInvalidMethod = errors.New("payment method must be Cash or Card")
)

// Payment validates and confirms a monetary transaction against a bill total.
type Payment struct {
	ID     string
	Method string
	Amount float64
}

func NewPayment(method string, amount float64) *Payment {
	return &Payment{ID: cuid.New(), Method: method, Amount: amount}
}

// Process succeeds only with a positive amount and a method of Cash or Card,
// matched case-insensitively. On success the method is normalised to its
// canonical form; on failure nothing is touched and the caller decides
// whether to retry.
func (p *Payment) Process() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	method, ok := NormalizeMethod(p.Method)
	if !ok {
		return ErrInvalidMethod
	}
	p.Method = method
	return nil
}

// NormalizeMethod maps a case-insensitive method name onto its canonical
// form.
func NormalizeMethod(method string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "cash":
		return PaymentMethodCash, true
	case "card":
		return PaymentMethodCard, true
	}
	return "", false
}
