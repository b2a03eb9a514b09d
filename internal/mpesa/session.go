package mpesa

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// PaymentState tracks a push through its life.
type PaymentState string

const (
	StateIdle       PaymentState = "idle"
	StateProcessing PaymentState = "processing"
	StateInitiated  PaymentState = "initiated"
	StateSuccess    PaymentState = "success"
	StateFailed     PaymentState = "failed"
)

// resultMessages maps Daraja result codes to donor-facing text. Anything
// not listed falls back to the gateway's own description.
var resultMessages = map[string]string{
	"0":    "Payment received. Thank you for your support!",
	"1":    "Payment cancelled. The request was declined on the phone.",
	"1032": "Payment cancelled. The request was declined on the phone.",
	"1037": "Payment timed out waiting for the phone. Please try again.",
	"2001": "Payment failed. The PIN entered was incorrect.",
}

// Session is one payment attempt. It is safe for concurrent use; the
// HTTP layer reads status while the poll goroutine advances it.
type Session struct {
	gateway Gateway

	// PollInterval and Timeout default to 3 seconds and 5 minutes.
	PollInterval time.Duration
	Timeout      time.Duration

	mu       sync.Mutex
	state    PaymentState
	checkout string
	message  string
	receipt  string
}

func NewSession(gateway Gateway) *Session {
	return &Session{
		gateway:      gateway,
		PollInterval: 3 * time.Second,
		Timeout:      5 * time.Minute,
		state:        StateIdle,
	}
}

// Status returns the current state, the donor-facing message and the
// receipt number once one exists.
func (s *Session) Status() (PaymentState, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.message, s.receipt
}

func (s *Session) CheckoutRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// Initiate fires the STK push. Only an idle session can start; a session
// that already ran must be Retry'd first.
func (s *Session) Initiate(ctx context.Context, req STKPushRequest) error {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("payment already %s", state)
	}
	s.state = StateProcessing
	s.mu.Unlock()

	resp, err := s.gateway.InitiateSTKPush(ctx, req)
	if err != nil {
		s.fail("Could not start the payment: " + err.Error())
		return err
	}

	s.mu.Lock()
	s.state = StateInitiated
	s.checkout = resp.CheckoutRequestID
	s.message = resp.CustomerMessage
	s.mu.Unlock()
	return nil
}

// Poll blocks until the push settles, fails or the timeout passes,
// querying the gateway on each tick. It returns the terminal state.
func (s *Session) Poll(ctx context.Context) PaymentState {
	s.mu.Lock()
	if s.state != StateInitiated {
		state := s.state
		s.mu.Unlock()
		return state
	}
	checkout := s.checkout
	s.mu.Unlock()

	deadline := time.Now().Add(s.Timeout)
	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.fail("Payment status check interrupted.")
			return StateFailed
		case <-ticker.C:
		}

		if time.Now().After(deadline) {
			s.fail("Payment timed out. No confirmation was received.")
			return StateFailed
		}

		result, err := s.gateway.QueryStatus(ctx, checkout)
		if err != nil {
			// Transient query errors are retried on the next tick.
			continue
		}
		if result.Pending {
			continue
		}

		msg, ok := resultMessages[result.ResultCode]
		if !ok {
			msg = result.ResultDesc
		}
		s.mu.Lock()
		if result.ResultCode == "0" {
			s.state = StateSuccess
		} else {
			s.state = StateFailed
		}
		s.message = msg
		s.receipt = result.Receipt
		state := s.state
		s.mu.Unlock()
		return state
	}
}

// Retry resets a failed session so the donor can try again. Successful
// and in-flight sessions are left alone.
func (s *Session) Retry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateFailed {
		return false
	}
	s.state = StateIdle
	s.checkout = ""
	s.message = ""
	s.receipt = ""
	return true
}

func (s *Session) fail(msg string) {
	s.mu.Lock()
	s.state = StateFailed
	s.message = msg
	s.mu.Unlock()
}
