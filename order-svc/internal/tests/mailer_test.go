package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"orderiq/order-svc/internal/mailer"
	"orderiq/order-svc/internal/notify"
)

type stubHTTPClient struct {
	lastReq *http.Request
	status  int
	body    string
	err     error
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(bytes.NewBufferString(s.body)),
	}, nil
}

func TestMailerClient_SendsRelayPayload(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusOK, body: `{"success":true}`}
	client := mailer.NewClient("http://email-svc:8080", stub)

	err := client.Send(context.Background(), notify.Event{
		Type: notify.OrderConfirmation,
		To:   "customer@demo.com",
		Details: map[string]interface{}{
			"orderId": "ORD-1", "restaurantName": "Karachi Biryani House",
		},
	})
	assert.NoError(t, err)

	assert.Equal(t, "http://email-svc:8080", stub.lastReq.URL.String())
	assert.Equal(t, http.MethodPost, stub.lastReq.Method)
	assert.Equal(t, "application/json", stub.lastReq.Header.Get("Content-Type"))

	raw, _ := io.ReadAll(stub.lastReq.Body)
	var sent notify.Event
	assert.NoError(t, json.Unmarshal(raw, &sent))
	assert.Equal(t, notify.OrderConfirmation, sent.Type)
	assert.Equal(t, "customer@demo.com", sent.To)
}

func TestMailerClient_RelayErrorSurfaced(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusBadRequest, body: `{"error":"Invalid email type"}`}
	client := mailer.NewClient("http://email-svc:8080", stub)

	err := client.Send(context.Background(), notify.Event{Type: "bogus", To: "x@y.com"})
	assert.ErrorContains(t, err, "Invalid email type")
}

func TestMailerClient_OpaqueFailure(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusBadGateway, body: "upstream down"}
	client := mailer.NewClient("http://email-svc:8080", stub)

	err := client.Send(context.Background(), notify.Event{Type: notify.WelcomeCustomer, To: "x@y.com"})
	assert.ErrorContains(t, err, "unexpected status 502")
}

func TestMailerClient_TransportError(t *testing.T) {
	stub := &stubHTTPClient{err: assert.AnError}
	client := mailer.NewClient("http://email-svc:8080", stub)

	err := client.Send(context.Background(), notify.Event{Type: notify.WelcomeCustomer, To: "x@y.com"})
	assert.Error(t, err)
}

func TestDirectNotifier_DelegatesToSender(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusOK, body: `{"success":true}`}
	direct := notify.NewDirect(mailer.NewClient("http://email-svc:8080", stub))

	err := direct.Notify(context.Background(), notify.Event{
		Type: notify.WelcomeRestaurant, To: "owner@demo.com",
	})
	assert.NoError(t, err)
	assert.NotNil(t, stub.lastReq)
}

func TestEmit_NilNotifierIsNoOp(t *testing.T) {
	// Must not panic.
	notify.Emit(context.Background(), nil, notify.Event{Type: notify.OTPVerification, To: "x@y.com"})
}
