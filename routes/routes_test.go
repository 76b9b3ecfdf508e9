package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"attendance_dashboard/attendance"
	"attendance_dashboard/metrics"
	"attendance_dashboard/middleware"
	"attendance_dashboard/temperature"
	"attendance_dashboard/upstream"

	"github.com/gin-gonic/gin"
)

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/allattendence", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"date":"2024-01-01","timeslot":1,"rollnoofstudentpresent":["A1","A2"],"createdAt":"2024-01-01T03:00:00.000Z"}]}`))
	})
	mux.HandleFunc("/allhealth", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"time":"t1","temperature":"20"},{"time":"t2","temperature":"35"},{"time":"t3","temperature":"10"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	up := newUpstream(t)
	m := metrics.New()
	client := upstream.NewClient(up.URL+"/allattendence", up.URL+"/allhealth", nil, m)
	store := attendance.NewStore(client)
	m.TrackAttendanceRecords(func() int { return store.Status().Records })
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("initial load: %v", err)
	}

	r := gin.New()
	if err := SetupRoutes(r, store, temperature.NewLoader(client), m, attendance.DefaulterThreshold); err != nil {
		t.Fatalf("SetupRoutes: %v", err)
	}
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestRoutesServeBothViews(t *testing.T) {
	r := newTestEngine(t)

	cases := []struct {
		target string
		status int
		want   string
	}{
		{"/", http.StatusFound, ""},
		{"/health", http.StatusOK, `"status":"healthy"`},
		{"/attendance?date=2024-01-01&slot=1", http.StatusOK, "<li>A2</li>"},
		{"/api/attendance/roster?date=2024-01-01&slot=1", http.StatusOK, `"present":["A1","A2"]`},
		{"/api/attendance/defaulters?start=2024-01-01&end=2024-01-01", http.StatusOK, `"total_sessions":1`},
		{"/temperature", http.StatusOK, "Highest: 35°C at t2"},
		{"/api/temperature", http.StatusOK, `"highest":{"value":35,"at":"t2"}`},
	}
	for _, tc := range cases {
		rr := get(r, tc.target)
		if rr.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.target, tc.status, rr.Code)
		}
		if tc.want != "" && !strings.Contains(rr.Body.String(), tc.want) {
			t.Fatalf("%s: expected %q in %s", tc.target, tc.want, rr.Body.String())
		}
		if rr.Header().Get(middleware.RequestIDHeader) == "" {
			t.Fatalf("%s: missing request id", tc.target)
		}
	}
}

func TestRoutesExposeMetrics(t *testing.T) {
	r := newTestEngine(t)
	get(r, "/api/timeslots")

	body := get(r, "/metrics").Body.String()
	for _, want := range []string{
		`http_requests_total{route="/api/timeslots",status="200"} 1`,
		`upstream_fetch_duration_seconds_count{target="attendance"} 1`,
		"attendance_records_loaded 1",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/timeslots", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get(middleware.RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected caller's request id, got %q", got)
	}
}
