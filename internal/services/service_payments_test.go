package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/mpesa"
	"github.com/13132klain/ufa-backend/internal/repository"
)

func TestPaymentSettlesDonation(t *testing.T) {
	ctx := context.Background()

	campaigns := NewCampaignService(repository.NewMemoryCampaignRepository())
	donations := NewDonationService(repository.NewMemoryDonationRepository(), campaigns)
	donationID, err := donations.Create(ctx, dto.DonationRequest{
		Amount: 500, DonorName: "Jane", PaymentMethod: models.PaymentMobileMoney,
	})
	if err != nil {
		t.Fatal(err)
	}

	gw := mpesa.NewSimulatedGateway()
	gw.Delay = 5 * time.Millisecond

	svc := NewPaymentService(gw, donations)
	svc.PollInterval = time.Millisecond
	svc.Timeout = time.Second

	resp, err := svc.InitiatePush(ctx, dto.PaymentRequest{
		Phone: "0712345678", Amount: 500, DonationID: donationID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.CheckoutRequestID == "" {
		t.Fatal("expected a checkout request id")
	}

	deadline := time.Now().Add(time.Second)
	for {
		st, err := svc.Status(resp.CheckoutRequestID)
		if err != nil {
			t.Fatal(err)
		}
		if st.State == string(mpesa.StateSuccess) {
			if st.Receipt == "" {
				t.Fatal("successful payment must carry a receipt")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("payment never settled, last state %s", st.State)
		}
		time.Sleep(time.Millisecond)
	}

	// Settlement lands asynchronously on the donation record.
	deadline = time.Now().Add(time.Second)
	for {
		d, err := donations.Get(ctx, donationID)
		if err != nil {
			t.Fatal(err)
		}
		if d.Status == models.DonationCompleted {
			if d.Receipt == "" {
				t.Fatal("completed donation must carry the receipt")
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("donation never completed, status %s", d.Status)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPaymentRejectsBadInput(t *testing.T) {
	donations := NewDonationService(repository.NewMemoryDonationRepository(), nil)
	svc := NewPaymentService(mpesa.NewSimulatedGateway(), donations)

	if _, err := svc.InitiatePush(context.Background(), dto.PaymentRequest{Phone: "12345", Amount: 100}); !errors.Is(err, mpesa.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
	if _, err := svc.InitiatePush(context.Background(), dto.PaymentRequest{Phone: "0712345678", Amount: 0}); err == nil {
		t.Fatal("zero amount must be rejected")
	}
	if _, err := svc.Status("missing"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	if err := svc.Retry("missing"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
