package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Record is a task as stored and served by TaskServer.
type Record struct {
	ID     string `json:"_id"`
	Task   string `json:"task"`
	Status bool   `json:"status"`
}

// TaskServer is an in-process task REST API with the routes and quirks of
// the reference server: an empty collection is served as null, responses
// carry form content types, and unknown ids are silently ignored.
type TaskServer struct {
	URL string

	mu       sync.Mutex
	records  []Record
	requests []string
	headers  []http.Header
	failWith int
}

// NewTaskServer starts a TaskServer that is closed when the test ends.
func NewTaskServer(t testing.TB) *TaskServer {
	t.Helper()
	s := &TaskServer{}
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	s.URL = srv.URL
	return s
}

// Handler returns the routed API.
func (s *TaskServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.intercept)
	r.HandleFunc("/api/tasks", s.getAll).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks", s.create).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/{id}", s.setStatus(true)).Methods(http.MethodPut)
	r.HandleFunc("/api/undoTask/{id}", s.setStatus(false)).Methods(http.MethodPut)
	r.HandleFunc("/api/deleteTask/{id}", s.delete).Methods(http.MethodDelete)
	return r
}

// Seed stores a record with a fixed id.
func (s *TaskServer) Seed(id, task string, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{ID: id, Task: task, Status: done})
}

// Records returns a copy of the stored records.
func (s *TaskServer) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Requests returns "METHOD path" for every request received.
func (s *TaskServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastHeader returns the headers of the most recent request.
func (s *TaskServer) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.headers) == 0 {
		return nil
	}
	return s.headers[len(s.headers)-1]
}

// FailWith makes every following request answer with status. Zero restores
// normal handling.
func (s *TaskServer) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

func (s *TaskServer) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.headers = append(s.headers, r.Header.Clone())
		status := s.failWith
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *TaskServer) getAll(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var payload []Record // stays nil, and encodes as null, when empty
	payload = append(payload, s.records...)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
	json.NewEncoder(w).Encode(payload)
}

func (s *TaskServer) create(w http.ResponseWriter, r *http.Request) {
	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec.ID = uuid.NewString()

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func (s *TaskServer) setStatus(done bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		s.mu.Lock()
		for i := range s.records {
			if s.records[i].ID == id {
				s.records[i].Status = done
			}
		}
		s.mu.Unlock()

		json.NewEncoder(w).Encode(id)
	}
}

func (s *TaskServer) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}
