package dto

type PaymentRequest struct {
	Phone      string  `json:"phone"`
	Amount     float64 `json:"amount"`
	DonationID string  `json:"donationId,omitempty"`
	Reference  string  `json:"reference,omitempty"`
}

type PaymentResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	CustomerMessage   string `json:"customerMessage,omitempty"`
}

// STKCallback mirrors the body Daraja posts to the registered callback URL.
type STKCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string `json:"Name"`
					Value any    `json:"Value,omitempty"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type PaymentStatusResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	State             string `json:"state"` // idle, processing, initiated, success, failed
	Receipt           string `json:"receipt,omitempty"`
	Message           string `json:"message,omitempty"`
}
