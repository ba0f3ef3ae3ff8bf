package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventx-studio/eventx-cli/api"
)

func TestClient_EventManagement(t *testing.T) {
	t.Run("create posts the form payload", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
			var input api.EventInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			require.Equal(t, "Jazz Night", input.Name)
			require.Equal(t, 120.0, input.Price)
			require.Equal(t, 50, input.Seats)
			writeJSON(t, w, http.StatusCreated, map[string]any{
				"success": true,
				"event":   map[string]any{"_id": "e9", "name": input.Name},
			})
		})
		client, _ := newTestClient(t, mux)

		event, err := client.CreateEvent(context.Background(), api.EventInput{
			Name: "Jazz Night", Date: "2026-09-12", Time: "20:00",
			Venue: "Cairo Opera House", Price: 120, Seats: 50,
		})
		require.NoError(t, err)
		require.Equal(t, "e9", event.ID)
	})

	t.Run("update and delete target the event id path", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /api/events/e9", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"event":   map[string]any{"_id": "e9", "name": "Jazz Night II"},
			})
		})
		mux.HandleFunc("DELETE /api/events/e9", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
		})
		client, _ := newTestClient(t, mux)

		event, err := client.UpdateEvent(context.Background(), "e9", api.EventInput{Name: "Jazz Night II"})
		require.NoError(t, err)
		require.Equal(t, "Jazz Night II", event.Name)

		require.NoError(t, client.DeleteEvent(context.Background(), "e9"))
	})

	t.Run("user events hits the organizer listing", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/events/user/events", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success":    true,
				"events":     []map[string]any{{"_id": "e1"}},
				"totalPages": 1,
			})
		})
		client, _ := newTestClient(t, mux)

		events, totalPages, err := client.UserEvents(context.Background(), api.ListEventsParams{})
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, 1, totalPages)
	})
}

func TestClient_TicketAdmin(t *testing.T) {
	t.Run("cancel puts against the ticket id", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /api/tickets/cancel/t1", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
		})
		client, _ := newTestClient(t, mux)

		require.NoError(t, client.CancelTicket(context.Background(), "t1"))
	})

	t.Run("check-in posts the scanned payload", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/tickets/check-in", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.JSONEq(t, `{"id":"t1","eventId":"e1","eventName":"Jazz Night","seatNumber":3,"date":"2026-09-12T00:00:00Z","time":"20:00","venue":"Opera","price":120}`, body["qrCode"])
			writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
		})
		client, _ := newTestClient(t, mux)

		require.NoError(t, client.CheckIn(context.Background(), `{"id":"t1","eventId":"e1","eventName":"Jazz Night","seatNumber":3,"date":"2026-09-12T00:00:00Z","time":"20:00","venue":"Opera","price":120}`))
	})

	t.Run("all tickets lists the platform", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/tickets/all", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"tickets": []map[string]any{{"_id": "t1", "seatNumber": 3}},
			})
		})
		client, _ := newTestClient(t, mux)

		tickets, err := client.AllTickets(context.Background())
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		require.Equal(t, 3, tickets[0].SeatNumber)
	})
}

func TestClient_Analytics(t *testing.T) {
	t.Run("dashboard stats decode", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/analytics/dashboard", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"stats": map[string]any{
					"totalEvents": 4, "activeEvents": 2,
					"totalTicketsSold": 180, "totalRevenue": 27000.0, "totalUsers": 95,
				},
			})
		})
		client, _ := newTestClient(t, mux)

		stats, err := client.DashboardStats(context.Background())
		require.NoError(t, err)
		require.Equal(t, 180, stats.TotalTicketsSold)
		require.Equal(t, 27000.0, stats.TotalRevenue)
	})

	t.Run("attendee insights pass the event filter", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/analytics/attendee-insights", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "e1", r.URL.Query().Get("eventId"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"insights": map[string]any{
					"totalAttendees": 40,
					"ageDistribution": []map[string]any{
						{"age": "25-34", "count": 30, "percentage": 75.0},
					},
				},
			})
		})
		client, _ := newTestClient(t, mux)

		insights, err := client.AttendeeInsights(context.Background(), "e1")
		require.NoError(t, err)
		require.Equal(t, 40, insights.TotalAttendees)
		require.Equal(t, "25-34", insights.AgeDistribution[0].Age)
	})

	t.Run("demographics decode", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/analytics/demographics", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"demographics": map[string]any{
					"totalUsers": 95,
					"locationDistribution": []map[string]any{
						{"location": "Cairo", "count": 60, "percentage": 63.2},
					},
				},
			})
		})
		client, _ := newTestClient(t, mux)

		demo, err := client.Demographics(context.Background())
		require.NoError(t, err)
		require.Equal(t, 95, demo.TotalUsers)
		require.Equal(t, "Cairo", demo.LocationDistribution[0].Location)
	})
}
