package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/eventx-studio/eventx-cli/api"
	"github.com/eventx-studio/eventx-cli/users"
)

func newTestClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := api.New(server.URL + "/api")
	require.NoError(t, err)
	return client, server
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_Login(t *testing.T) {
	t.Run("returns the user and keeps the session cookie", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, "nour@example.com", creds["email"])

			http.SetCookie(w, &http.Cookie{Name: "token", Value: "opaque", Path: "/"})
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"user":    users.User{ID: "u1", Email: creds["email"], Role: users.RoleUser},
			})
		})
		mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			require.NoError(t, err)
			require.Equal(t, "opaque", cookie.Value)
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"user":    users.User{ID: "u1", Email: "nour@example.com", Role: users.RoleUser},
			})
		})
		client, _ := newTestClient(t, mux)

		user, err := client.Login(context.Background(), "nour@example.com", "secret")
		require.NoError(t, err)
		require.Equal(t, "u1", user.ID)

		// The jar must replay the cookie on the next call.
		_, err = client.Profile(context.Background())
		require.NoError(t, err)
	})

	t.Run("success false becomes a typed APIError", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "invalid credentials",
			})
		})
		client, _ := newTestClient(t, mux)

		_, err := client.Login(context.Background(), "nour@example.com", "wrong")
		apiErr, ok := api.IsAPIError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, apiErr.Status)
		require.Equal(t, "invalid credentials", apiErr.Message)
	})

	t.Run("transport failure is not an APIError", func(t *testing.T) {
		client, server := newTestClient(t, http.NewServeMux())
		server.Close()

		_, err := client.Login(context.Background(), "a@b.c", "x")
		require.Error(t, err)
		_, ok := api.IsAPIError(err)
		require.False(t, ok)
	})
}

func TestClient_Events(t *testing.T) {
	t.Run("passes search and paging parameters", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "jazz", r.URL.Query().Get("search"))
			require.Equal(t, "2", r.URL.Query().Get("page"))
			require.Equal(t, "12", r.URL.Query().Get("limit"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success":    true,
				"events":     []api.Event{{ID: "e1", Name: "Jazz Night", Price: 250, Seats: 100, Booked: 40}},
				"totalPages": 3,
			})
		})
		client, _ := newTestClient(t, mux)

		events, totalPages, err := client.Events(context.Background(), api.ListEventsParams{
			Search: "jazz", Page: 2, Limit: 12,
		})
		require.NoError(t, err)
		require.Equal(t, 3, totalPages)
		require.Len(t, events, 1)
		require.Equal(t, 60, events[0].Available())
	})

	t.Run("single event snapshot", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/events/e1", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"event": api.Event{
					ID: "e1", Name: "Jazz Night", Seats: 10, Booked: 3,
					BookedSeats: []string{"4", "7", "9"},
				},
			})
		})
		client, _ := newTestClient(t, mux)

		event, err := client.Event(context.Background(), "e1")
		require.NoError(t, err)
		require.True(t, event.SeatBooked(4))
		require.False(t, event.SeatBooked(1))
	})
}

func TestClient_BookTicket(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tickets/book", func(w http.ResponseWriter, r *http.Request) {
		var req api.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "e1", req.EventID)
		require.Equal(t, api.PaymentMethodCashless, req.PaymentMethod)
		if req.SeatNumber == 13 {
			writeJSON(t, w, http.StatusConflict, map[string]any{
				"success": false, "message": "seat already booked",
			})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
	})
	client, _ := newTestClient(t, mux)

	t.Run("books a free seat", func(t *testing.T) {
		err := client.BookTicket(context.Background(), api.BookingRequest{
			EventID: "e1", SeatNumber: 2, PaymentMethod: api.PaymentMethodCashless,
		})
		require.NoError(t, err)
	})

	t.Run("taken seat is a logical failure", func(t *testing.T) {
		err := client.BookTicket(context.Background(), api.BookingRequest{
			EventID: "e1", SeatNumber: 13, PaymentMethod: api.PaymentMethodCashless,
		})
		apiErr, ok := api.IsAPIError(err)
		require.True(t, ok)
		require.Equal(t, "seat already booked", apiErr.Message)
	})
}

func TestClient_MyTickets(t *testing.T) {
	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tickets/my-tickets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"tickets": []api.Ticket{
				{ID: "t1", SeatNumber: 2, Status: "confirmed", Event: &api.Event{
					ID: "e1", Name: "Jazz Night", Date: date, Time: "19:00", Venue: "Opera House",
				}},
			},
		})
	})
	client, _ := newTestClient(t, mux)

	tickets, err := client.MyTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	// Embedded event fields must be folded onto the flat ticket.
	require.Equal(t, "Jazz Night", tickets[0].EventName)
	require.Equal(t, "Opera House", tickets[0].Venue)

	payload, err := tickets[0].QRPayload()
	require.NoError(t, err)
	require.Contains(t, payload, `"eventName":"Jazz Night"`)
	require.Contains(t, payload, `"seatNumber":2`)
}

func TestClient_SessionExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "u1", "exp": exp.Unix()})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: signed, Path: "/"})
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true, "user": users.User{ID: "u1", Email: "a@b.c"},
		})
	})
	client, _ := newTestClient(t, mux)

	require.True(t, client.SessionExpiry().IsZero())
	_, err = client.Login(context.Background(), "a@b.c", "x")
	require.NoError(t, err)
	// The jar strips cookie attributes, so the expiry comes from the
	// token's exp claim.
	require.Equal(t, exp.Unix(), client.SessionExpiry().Unix())
}
