package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// PaymentMethodCashless is the only payment method the booking flow
// issues; payment handling itself is out of scope for the client.
const PaymentMethodCashless = "cashless"

// BookTicket books a single seat. Multi-seat purchases issue one call
// per seat; the backend is the sole authority on whether a seat is
// still free at booking time.
func (c *Client) BookTicket(ctx context.Context, req BookingRequest) error {
	var resp Response
	return c.do(ctx, http.MethodPost, "/tickets/book", nil, req, &resp)
}

// MyTickets lists the current user's tickets, normalized so the flat
// event fields are always populated.
func (c *Client) MyTickets(ctx context.Context) ([]Ticket, error) {
	var resp struct {
		Response
		Tickets []Ticket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/tickets/my-tickets", nil, nil, &resp); err != nil {
		return nil, err
	}
	tickets := make([]Ticket, len(resp.Tickets))
	for i, t := range resp.Tickets {
		tickets[i] = t.Normalize()
	}
	return tickets, nil
}

// AllTickets lists every ticket on the platform (admin only).
func (c *Client) AllTickets(ctx context.Context) ([]Ticket, error) {
	var resp struct {
		Response
		Tickets []Ticket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/tickets/all", nil, nil, &resp); err != nil {
		return nil, err
	}
	tickets := make([]Ticket, len(resp.Tickets))
	for i, t := range resp.Tickets {
		tickets[i] = t.Normalize()
	}
	return tickets, nil
}

// CancelTicket cancels a booked ticket.
func (c *Client) CancelTicket(ctx context.Context, ticketID string) error {
	var resp Response
	return c.do(ctx, http.MethodPut, "/tickets/cancel/"+url.PathEscape(ticketID), nil, nil, &resp)
}

// CheckIn validates a scanned QR payload at the venue door (admin
// only).
func (c *Client) CheckIn(ctx context.Context, qrCode string) error {
	var resp Response
	body := map[string]string{"qrCode": qrCode}
	return c.do(ctx, http.MethodPost, "/tickets/check-in", nil, body, &resp)
}

// qrPayload is the document encoded into a ticket's QR code. Field
// order matters only for byte-stable payloads across renders; the
// check-in endpoint decodes it as JSON.
type qrPayload struct {
	ID         string  `json:"id"`
	EventID    string  `json:"eventId"`
	EventName  string  `json:"eventName"`
	SeatNumber int     `json:"seatNumber"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Venue      string  `json:"venue"`
	Price      float64 `json:"price"`
}

// QRPayload serializes the ticket into the JSON document the check-in
// scanner expects.
func (t Ticket) QRPayload() (string, error) {
	t = t.Normalize()
	payload := qrPayload{
		ID:         t.ID,
		EventID:    t.EventID,
		EventName:  t.EventName,
		SeatNumber: t.SeatNumber,
		Date:       t.Date.Format(time.RFC3339),
		Time:       t.Time,
		Venue:      t.Venue,
		Price:      t.Price,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "[Ticket.QRPayload] encode")
	}
	return string(data), nil
}
