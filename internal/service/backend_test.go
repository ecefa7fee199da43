package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
	"github.com/JBorrsad/odoonto-mobile/internal/repository"
	"github.com/JBorrsad/odoonto-mobile/pkg/apiclient"
)

// fakeBackend is an in-memory clinic backend speaking the appointments API.
type fakeBackend struct {
	mu           sync.Mutex
	appointments []domain.Appointment
	nextID       int
	listCalls    int
	posts        int

	// failures keyed by "METHOD kind", e.g. "POST create", "GET list"
	failures map[string]failure
	// hooks run before a request of the given kind is answered
	hooks map[string]func()
}

type failure struct {
	status int
	body   string
}

func newFakeBackend(seed ...domain.Appointment) *fakeBackend {
	return &fakeBackend{
		appointments: seed,
		nextID:       100,
		failures:     make(map[string]failure),
		hooks:        make(map[string]func()),
	}
}

func (f *fakeBackend) fail(kind string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[kind] = failure{status: status, body: body}
}

func (f *fakeBackend) hook(kind string, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[kind] = fn
}

func (f *fakeBackend) counts() (lists, posts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.posts
}

func (f *fakeBackend) resetCounts() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = 0
	f.posts = 0
}

func (f *fakeBackend) statusOf(id string) domain.AppointmentStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.ID == id {
			return a.Status
		}
	}
	return ""
}

func classify(r *http.Request) (kind, id string) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/appointments")
	rest = strings.Trim(rest, "/")
	parts := strings.Split(rest, "/")

	switch {
	case r.Method == http.MethodGet && rest == "":
		return "GET list", ""
	case r.Method == http.MethodGet && len(parts) == 2 && (parts[0] == "doctor" || parts[0] == "patient"):
		return "GET list", parts[1]
	case r.Method == http.MethodGet:
		return "GET one", parts[0]
	case r.Method == http.MethodPost:
		return "POST create", ""
	case r.Method == http.MethodPut && len(parts) == 2 && parts[1] == "confirm":
		return "PUT confirm", parts[0]
	case r.Method == http.MethodPut:
		return "PUT update", parts[0]
	case r.Method == http.MethodDelete && len(parts) == 2 && parts[1] == "cancel":
		return "DELETE cancel", parts[0]
	case r.Method == http.MethodDelete:
		return "DELETE delete", parts[0]
	}
	return "", ""
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind, id := classify(r)

	f.mu.Lock()
	if kind == "GET list" {
		f.listCalls++
	}
	if kind == "POST create" {
		f.posts++
	}
	hook := f.hooks[kind]
	fail, failing := f.failures[kind]
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if failing {
		w.WriteHeader(fail.status)
		_, _ = w.Write([]byte(fail.body))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch kind {
	case "GET list":
		out := []domain.Appointment{}
		for _, a := range f.appointments {
			if strings.Contains(r.URL.Path, "/doctor/") && a.DoctorID != id {
				continue
			}
			out = append(out, a)
		}
		writeJSON(w, http.StatusOK, out)

	case "GET one":
		for _, a := range f.appointments {
			if a.ID == id {
				writeJSON(w, http.StatusOK, a)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Cita no encontrada"})

	case "POST create":
		var a domain.Appointment
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		f.nextID++
		a.ID = strconv.Itoa(f.nextID)
		if a.Status == "" {
			a.Status = domain.AppointmentStatusPending
		}
		f.appointments = append(f.appointments, a)
		writeJSON(w, http.StatusCreated, a)

	case "PUT update", "PUT confirm", "DELETE cancel":
		var patch domain.AppointmentPatch
		if kind == "PUT update" {
			_ = json.NewDecoder(r.Body).Decode(&patch)
		}
		for i := range f.appointments {
			if f.appointments[i].ID != id {
				continue
			}
			switch kind {
			case "PUT confirm":
				f.appointments[i].Status = domain.AppointmentStatusConfirmed
			case "DELETE cancel":
				f.appointments[i].Status = domain.AppointmentStatusCancelled
				w.WriteHeader(http.StatusNoContent)
				return
			default:
				f.appointments[i] = *applyPatch(f.appointments[i], patch)
			}
			writeJSON(w, http.StatusOK, f.appointments[i])
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Cita no encontrada"})

	case "DELETE delete":
		for i := range f.appointments {
			if f.appointments[i].ID == id {
				f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Cita no encontrada"})

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newBackendClient(t *testing.T, backend http.Handler) *apiclient.Client {
	t.Helper()
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)
	return apiclient.New(apiclient.Options{BaseURL: ts.URL, Timeout: 5 * time.Second}, zap.NewNop())
}

func newTestRepos(t *testing.T, backend http.Handler) *repository.Repositories {
	t.Helper()
	return repository.NewRepositories(newBackendClient(t, backend), nil)
}

func seeded(id, doctorID, patientID string, hour, minute, slots int, status domain.AppointmentStatus) domain.Appointment {
	start := time.Date(2025, 5, 16, hour, minute, 0, 0, time.Local)
	end := domain.NewTimestamp(start.Add(time.Duration(slots) * domain.SlotDuration))
	return domain.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		Start:     domain.NewTimestamp(start),
		End:       &end,
		Status:    status,
	}
}
