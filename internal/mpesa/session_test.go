package mpesa

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedGateway returns pending a set number of times, then the
// configured terminal result.
type scriptedGateway struct {
	pendingPolls int
	result       StatusResult
	initiateErr  error
	polls        int
}

func (g *scriptedGateway) InitiateSTKPush(context.Context, STKPushRequest) (*STKPushResponse, error) {
	if g.initiateErr != nil {
		return nil, g.initiateErr
	}
	return &STKPushResponse{CheckoutRequestID: "chk-1", CustomerMessage: "Request accepted"}, nil
}

func (g *scriptedGateway) QueryStatus(context.Context, string) (*StatusResult, error) {
	g.polls++
	if g.polls <= g.pendingPolls {
		return &StatusResult{Pending: true}, nil
	}
	r := g.result
	return &r, nil
}

func fastSession(g Gateway) *Session {
	s := NewSession(g)
	s.PollInterval = time.Millisecond
	s.Timeout = 100 * time.Millisecond
	return s
}

func TestSessionSuccessfulPayment(t *testing.T) {
	gw := &scriptedGateway{
		pendingPolls: 2,
		result:       StatusResult{ResultCode: "0", Receipt: "MP12345"},
	}
	s := fastSession(gw)

	if err := s.Initiate(context.Background(), STKPushRequest{Phone: "254712345678", Amount: 100}); err != nil {
		t.Fatal(err)
	}
	if state, _, _ := s.Status(); state != StateInitiated {
		t.Fatalf("expected initiated after push, got %s", state)
	}

	if got := s.Poll(context.Background()); got != StateSuccess {
		t.Fatalf("expected success, got %s", got)
	}
	state, msg, receipt := s.Status()
	if state != StateSuccess || receipt != "MP12345" {
		t.Fatalf("terminal state wrong: %s %q", state, receipt)
	}
	if msg != "Payment received. Thank you for your support!" {
		t.Fatalf("unexpected message %q", msg)
	}
	if gw.polls != 3 {
		t.Fatalf("expected 3 status queries, got %d", gw.polls)
	}
}

func TestSessionCancelledOnPhone(t *testing.T) {
	gw := &scriptedGateway{result: StatusResult{ResultCode: "1032", ResultDesc: "Request cancelled by user"}}
	s := fastSession(gw)

	s.Initiate(context.Background(), STKPushRequest{Phone: "254712345678", Amount: 50})
	if got := s.Poll(context.Background()); got != StateFailed {
		t.Fatalf("expected failed, got %s", got)
	}
	_, msg, _ := s.Status()
	if msg != "Payment cancelled. The request was declined on the phone." {
		t.Fatalf("code 1032 must map to the cancellation message, got %q", msg)
	}
}

func TestSessionTimesOut(t *testing.T) {
	gw := &scriptedGateway{pendingPolls: 1 << 30}
	s := fastSession(gw)
	s.Timeout = 10 * time.Millisecond

	s.Initiate(context.Background(), STKPushRequest{Phone: "254712345678", Amount: 50})
	if got := s.Poll(context.Background()); got != StateFailed {
		t.Fatalf("expected failed after timeout, got %s", got)
	}
}

func TestSessionRetryOnlyFromFailed(t *testing.T) {
	gw := &scriptedGateway{initiateErr: errors.New("network down")}
	s := fastSession(gw)

	if err := s.Initiate(context.Background(), STKPushRequest{Phone: "254712345678"}); err == nil {
		t.Fatal("expected initiate error")
	}
	if state, _, _ := s.Status(); state != StateFailed {
		t.Fatalf("failed initiate must fail the session, got %s", state)
	}

	if !s.Retry() {
		t.Fatal("retry from failed must reset")
	}
	if state, _, _ := s.Status(); state != StateIdle {
		t.Fatalf("retry must return to idle, got %s", state)
	}

	// A fresh session cannot be retried, and cannot be double-initiated.
	fresh := fastSession(&scriptedGateway{result: StatusResult{ResultCode: "0"}})
	if fresh.Retry() {
		t.Fatal("retry must be a no-op on an idle session")
	}
	fresh.Initiate(context.Background(), STKPushRequest{Phone: "254712345678"})
	if err := fresh.Initiate(context.Background(), STKPushRequest{Phone: "254712345678"}); err == nil {
		t.Fatal("double initiate must error")
	}
}

func TestSimulatedGatewaySettles(t *testing.T) {
	gw := NewSimulatedGateway()
	gw.Delay = 5 * time.Millisecond

	resp, err := gw.InitiateSTKPush(context.Background(), STKPushRequest{Phone: "0712345678", Amount: 200})
	if err != nil {
		t.Fatal(err)
	}

	st, err := gw.QueryStatus(context.Background(), resp.CheckoutRequestID)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Pending {
		t.Fatal("expected pending immediately after initiate")
	}

	time.Sleep(10 * time.Millisecond)
	st, err = gw.QueryStatus(context.Background(), resp.CheckoutRequestID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Pending || st.ResultCode != "0" || st.Receipt == "" {
		t.Fatalf("expected settled success, got %+v", st)
	}

	if _, err := gw.QueryStatus(context.Background(), "nope"); err == nil {
		t.Fatal("unknown checkout id must error")
	}

	if _, err := gw.InitiateSTKPush(context.Background(), STKPushRequest{Phone: "12345"}); err == nil {
		t.Fatal("invalid phone must be rejected before any push")
	}
}
