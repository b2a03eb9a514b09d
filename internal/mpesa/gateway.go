package mpesa

import "context"

// STKPushRequest asks the gateway to pop a payment prompt on the donor's
// phone. Phone must already be normalized to the 254 format.
type STKPushRequest struct {
	Phone            string
	Amount           float64
	AccountReference string
	Description      string
}

// STKPushResponse is the immediate acknowledgement; settlement arrives
// later through status polling.
type STKPushResponse struct {
	CheckoutRequestID string
	MerchantRequestID string
	CustomerMessage   string
}

// StatusResult reports where a push stands. Pending stays true until the
// donor acts or the prompt expires; ResultCode is only meaningful once
// Pending is false.
type StatusResult struct {
	Pending    bool
	ResultCode string
	ResultDesc string
	Receipt    string
}

// Gateway abstracts the payment rail so the donation flow works the same
// against the simulator and the Daraja sandbox.
type Gateway interface {
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResponse, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (*StatusResult, error)
}
