package services

import (
	"context"
	"testing"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/repository"
)

func TestCampaignProgress(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		target  float64
		want    int
	}{
		{"half way", 500, 1000, 50},
		{"overfunded clamps", 1500, 1000, 100},
		{"exactly funded", 1000, 1000, 100},
		{"zero target", 50, 0, 0},
		{"nothing raised", 0, 1000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CampaignProgress(tc.current, tc.target); got != tc.want {
				t.Fatalf("CampaignProgress(%v, %v) = %d, want %d", tc.current, tc.target, got, tc.want)
			}
		})
	}
}

func TestRecordDonationIncrementsByTitle(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(repository.NewMemoryCampaignRepository())

	id, err := svc.Create(ctx, dto.CampaignRequest{
		Title:        "School Desks",
		TargetAmount: 10000,
		IsActive:     true,
		Category:     models.CampaignEducation,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.RecordDonation(ctx, "School Desks", 2500); err != nil {
		t.Fatal(err)
	}
	c, _ := svc.Get(ctx, id)
	if c.CurrentAmount != 2500 {
		t.Fatalf("expected 2500 raised, got %v", c.CurrentAmount)
	}

	// Unknown titles are skipped, not errors: donations keep their free-form
	// campaign string even when no campaign matches.
	if err := svc.RecordDonation(ctx, "Renamed Campaign", 100); err != nil {
		t.Fatalf("unknown campaign title must be a silent skip, got %v", err)
	}
	c, _ = svc.Get(ctx, id)
	if c.CurrentAmount != 2500 {
		t.Fatalf("unattributed donation must not change totals, got %v", c.CurrentAmount)
	}
}

func TestDonationCompleteSettlesAndCredits(t *testing.T) {
	ctx := context.Background()
	campaigns := NewCampaignService(repository.NewMemoryCampaignRepository())
	donations := NewDonationService(repository.NewMemoryDonationRepository(), campaigns)

	campaignID, _ := campaigns.Create(ctx, dto.CampaignRequest{Title: "Clean Water", TargetAmount: 5000})
	donationID, err := donations.Create(ctx, dto.DonationRequest{
		Amount:        1200,
		Campaign:      "Clean Water",
		PaymentMethod: models.PaymentMobileMoney,
		DonorName:     "Jane",
	})
	if err != nil {
		t.Fatal(err)
	}

	d, _ := donations.Get(ctx, donationID)
	if d.Status != models.DonationPending || d.Currency != "KES" {
		t.Fatalf("new donation must be pending in KES, got %+v", d)
	}

	if err := donations.Complete(ctx, donationID, "MP1234567890"); err != nil {
		t.Fatal(err)
	}
	d, _ = donations.Get(ctx, donationID)
	if d.Status != models.DonationCompleted || d.Receipt != "MP1234567890" {
		t.Fatalf("donation not settled: %+v", d)
	}

	c, _ := campaigns.Get(ctx, campaignID)
	if c.CurrentAmount != 1200 {
		t.Fatalf("campaign not credited: %+v", c)
	}

	// A duplicate settlement callback must not double-credit.
	if err := donations.Complete(ctx, donationID, "MP1234567890"); err != nil {
		t.Fatal(err)
	}
	c, _ = campaigns.Get(ctx, campaignID)
	if c.CurrentAmount != 1200 {
		t.Fatalf("duplicate completion double-credited: %+v", c)
	}
}
