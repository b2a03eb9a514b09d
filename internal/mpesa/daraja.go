package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// DarajaConfig carries the sandbox credentials. The defaults elsewhere
// point at the public Safaricom sandbox shortcode.
type DarajaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

// DarajaGateway talks to the Safaricom Daraja sandbox over HTTPS. Access
// tokens are cached until shortly before expiry.
type DarajaGateway struct {
	cfg    DarajaConfig
	client *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewDarajaGateway(cfg DarajaConfig) *DarajaGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sandbox.safaricom.co.ke"
	}
	return &DarajaGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *DarajaGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.accessToken != "" && time.Now().Before(g.tokenExpiry) {
		return g.accessToken, nil
	}

	url := g.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.ConsumerKey, g.cfg.ConsumerSecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("daraja auth: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("daraja auth: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("daraja auth: %w", err)
	}

	g.accessToken = body.AccessToken
	// Tokens last an hour; refresh a minute early.
	g.tokenExpiry = time.Now().Add(59 * time.Minute)
	return g.accessToken, nil
}

// stkPassword is base64(shortcode + passkey + timestamp) per the API docs.
func (g *DarajaGateway) stkPassword(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(g.cfg.ShortCode + g.cfg.Passkey + timestamp))
}

func (g *DarajaGateway) InitiateSTKPush(ctx context.Context, push STKPushRequest) (*STKPushResponse, error) {
	phone, err := NormalizePhone(push.Phone)
	if err != nil {
		return nil, err
	}
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	payload := map[string]any{
		"BusinessShortCode": g.cfg.ShortCode,
		"Password":          g.stkPassword(timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int(push.Amount),
		"PartyA":            phone,
		"PartyB":            g.cfg.ShortCode,
		"PhoneNumber":       phone,
		"CallBackURL":       g.cfg.CallbackURL,
		"AccountReference":  push.AccountReference,
		"TransactionDesc":   push.Description,
	}

	var out struct {
		MerchantRequestID   string `json:"MerchantRequestID"`
		CheckoutRequestID   string `json:"CheckoutRequestID"`
		ResponseCode        string `json:"ResponseCode"`
		ResponseDescription string `json:"ResponseDescription"`
		CustomerMessage     string `json:"CustomerMessage"`
	}
	if err := g.post(ctx, token, "/mpesa/stkpush/v1/processrequest", payload, &out); err != nil {
		return nil, err
	}
	if out.ResponseCode != "0" {
		return nil, fmt.Errorf("stk push rejected: %s", out.ResponseDescription)
	}
	return &STKPushResponse{
		CheckoutRequestID: out.CheckoutRequestID,
		MerchantRequestID: out.MerchantRequestID,
		CustomerMessage:   out.CustomerMessage,
	}, nil
}

func (g *DarajaGateway) QueryStatus(ctx context.Context, checkoutRequestID string) (*StatusResult, error) {
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	payload := map[string]any{
		"BusinessShortCode": g.cfg.ShortCode,
		"Password":          g.stkPassword(timestamp),
		"Timestamp":         timestamp,
		"CheckoutRequestID": checkoutRequestID,
	}

	var out struct {
		ResponseCode string `json:"ResponseCode"`
		ResultCode   string `json:"ResultCode"`
		ResultDesc   string `json:"ResultDesc"`
		ErrorCode    string `json:"errorCode"`
	}
	if err := g.post(ctx, token, "/mpesa/stkpushquery/v1/query", payload, &out); err != nil {
		return nil, err
	}

	// The sandbox answers "transaction is being processed" as an error
	// payload until the prompt resolves.
	if out.ErrorCode != "" || out.ResultCode == "" {
		return &StatusResult{Pending: true}, nil
	}
	return &StatusResult{
		ResultCode: out.ResultCode,
		ResultDesc: out.ResultDesc,
	}, nil
}

func (g *DarajaGateway) post(ctx context.Context, token, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("daraja %s: %w", path, err)
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}
