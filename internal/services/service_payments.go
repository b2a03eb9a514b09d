package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/mpesa"
)

var ErrPaymentNotFound = errors.New("payment session not found")

// PaymentService drives STK push payments and settles the linked
// donation when the gateway confirms.
type PaymentService struct {
	gateway   mpesa.Gateway
	donations *DonationService

	// PollInterval and Timeout override the session defaults when set.
	PollInterval time.Duration
	Timeout      time.Duration

	mu       sync.Mutex
	sessions map[string]*paymentSession
}

type paymentSession struct {
	session    *mpesa.Session
	donationID string
}

func NewPaymentService(gateway mpesa.Gateway, donations *DonationService) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		donations: donations,
		sessions:  make(map[string]*paymentSession),
	}
}

// InitiatePush starts a payment prompt and begins polling in the
// background. The donor's phone is normalized before anything is sent.
func (s *PaymentService) InitiatePush(ctx context.Context, req dto.PaymentRequest) (*dto.PaymentResponse, error) {
	phone, err := mpesa.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	reference := req.Reference
	if reference == "" {
		reference = "UFA Donation"
	}

	session := mpesa.NewSession(s.gateway)
	if s.PollInterval > 0 {
		session.PollInterval = s.PollInterval
	}
	if s.Timeout > 0 {
		session.Timeout = s.Timeout
	}
	if err := session.Initiate(ctx, mpesa.STKPushRequest{
		Phone:            phone,
		Amount:           req.Amount,
		AccountReference: reference,
		Description:      "Donation to United Future Alliance",
	}); err != nil {
		return nil, err
	}

	checkout := session.CheckoutRequestID()
	s.mu.Lock()
	s.sessions[checkout] = &paymentSession{session: session, donationID: req.DonationID}
	s.mu.Unlock()

	go s.settle(checkout)

	_, msg, _ := session.Status()
	return &dto.PaymentResponse{CheckoutRequestID: checkout, CustomerMessage: msg}, nil
}

// settle waits for the push to resolve and records the outcome on the
// donation, when the payment was started for one.
func (s *PaymentService) settle(checkout string) {
	s.mu.Lock()
	ps, ok := s.sessions[checkout]
	s.mu.Unlock()
	if !ok {
		return
	}

	ctx := context.Background()
	state := ps.session.Poll(ctx)
	if ps.donationID == "" {
		return
	}

	_, _, receipt := ps.session.Status()
	var err error
	switch state {
	case mpesa.StateSuccess:
		err = s.donations.Complete(ctx, ps.donationID, receipt)
	case mpesa.StateFailed:
		err = s.donations.Fail(ctx, ps.donationID)
	}
	if err != nil {
		log.Println("payments: could not record outcome for donation", ps.donationID, ":", err)
	}
}

// Status reports where a payment stands so the donation form can poll.
func (s *PaymentService) Status(checkout string) (*dto.PaymentStatusResponse, error) {
	s.mu.Lock()
	ps, ok := s.sessions[checkout]
	s.mu.Unlock()
	if !ok {
		return nil, ErrPaymentNotFound
	}

	state, msg, receipt := ps.session.Status()
	return &dto.PaymentStatusResponse{
		CheckoutRequestID: checkout,
		State:             string(state),
		Receipt:           receipt,
		Message:           msg,
	}, nil
}

// HandleCallback settles a donation from the gateway's asynchronous
// result hook. Polling usually gets there first; donation completion is
// idempotent so the two paths cannot double-credit.
func (s *PaymentService) HandleCallback(ctx context.Context, checkout string, resultCode int, receipt string) error {
	s.mu.Lock()
	ps, ok := s.sessions[checkout]
	s.mu.Unlock()
	if !ok {
		return ErrPaymentNotFound
	}
	if ps.donationID == "" {
		return nil
	}

	if resultCode == 0 {
		return s.donations.Complete(ctx, ps.donationID, receipt)
	}
	return s.donations.Fail(ctx, ps.donationID)
}

// Retry clears a failed payment so the donor can resubmit. The session
// is discarded; a fresh push creates a new one.
func (s *PaymentService) Retry(checkout string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.sessions[checkout]
	if !ok {
		return ErrPaymentNotFound
	}
	if !ps.session.Retry() {
		return errors.New("payment is not in a failed state")
	}
	delete(s.sessions, checkout)
	return nil
}
