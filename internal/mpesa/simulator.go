package mpesa

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SimulatedGateway plays the part of the payment rail in development.
// Every push settles successfully after Delay, with a receipt shaped
// like a real M-Pesa one.
type SimulatedGateway struct {
	// Delay is how long a push stays pending. Zero means the default
	// of 3 seconds; tests set it to something tiny.
	Delay time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{sessions: make(map[string]time.Time)}
}

func (g *SimulatedGateway) delay() time.Duration {
	if g.Delay > 0 {
		return g.Delay
	}
	return 3 * time.Second
}

func (g *SimulatedGateway) InitiateSTKPush(_ context.Context, req STKPushRequest) (*STKPushResponse, error) {
	if _, err := NormalizePhone(req.Phone); err != nil {
		return nil, err
	}
	id := uuid.NewString()

	g.mu.Lock()
	g.sessions[id] = time.Now()
	g.mu.Unlock()

	return &STKPushResponse{
		CheckoutRequestID: id,
		MerchantRequestID: uuid.NewString(),
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil
}

func (g *SimulatedGateway) QueryStatus(_ context.Context, checkoutRequestID string) (*StatusResult, error) {
	g.mu.Lock()
	started, ok := g.sessions[checkoutRequestID]
	g.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown checkout request %s", checkoutRequestID)
	}

	if time.Since(started) < g.delay() {
		return &StatusResult{Pending: true}, nil
	}
	return &StatusResult{
		ResultCode: "0",
		ResultDesc: "The service request is processed successfully.",
		Receipt:    fmt.Sprintf("MP%d", time.Now().UnixMilli()),
	}, nil
}
