// Command stub-api is an in-memory stand-in for the RihlaDz backend,
// for local development of the admin console. Data resets on restart.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type record map[string]string

type server struct {
	mu          sync.Mutex
	collections map[string][]record
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	s := &server{collections: seed()}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "rihladz-stub-api"})
	})

	r.Route("/collection/{name}", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Post("/delete-multiple", s.deleteMultiple)
		r.Put("/{id}", s.update)
		r.Delete("/{id}", s.delete)
		r.Put("/{id}/status", s.setStatus)
	})

	r.Put("/messages/{id}/mark-read", s.markRead)

	log.Printf("rihladz stub api listening on %s (in-memory, data resets on restart)", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func (s *server) list(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(req, "name")
	items, ok := s.collections[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown collection "+name)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *server) create(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(req, "name")
	if _, ok := s.collections[name]; !ok {
		writeError(w, http.StatusNotFound, "unknown collection "+name)
		return
	}

	var fields record
	if err := json.NewDecoder(req.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := record{"id": uuid.NewString()}
	for k, v := range fields {
		if k != "id" {
			item[k] = v
		}
	}
	s.collections[name] = append(s.collections[name], item)
	writeJSON(w, http.StatusCreated, item)
}

func (s *server) update(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(req, "name")
	id := chi.URLParam(req, "id")

	item, ok := s.find(name, id)
	if !ok {
		writeError(w, http.StatusNotFound, "record "+id+" not found")
		return
	}

	var fields record
	if err := json.NewDecoder(req.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for k, v := range fields {
		if k != "id" {
			item[k] = v
		}
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *server) delete(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(req, "name")
	id := chi.URLParam(req, "id")

	if !s.remove(name, id) {
		writeError(w, http.StatusNotFound, "record "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *server) deleteMultiple(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(req, "name")
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "no ids given")
		return
	}

	// All-or-nothing: verify every id before touching the collection.
	for _, id := range body.IDs {
		if _, ok := s.find(name, id); !ok {
			writeError(w, http.StatusNotFound, "record "+id+" not found")
			return
		}
	}
	for _, id := range body.IDs {
		s.remove(name, id)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *server) setStatus(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := chi.URLParam(req, "name")
	id := chi.URLParam(req, "id")

	item, ok := s.find(name, id)
	if !ok {
		writeError(w, http.StatusNotFound, "record "+id+" not found")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Status == "" {
		writeError(w, http.StatusBadRequest, "status required")
		return
	}

	item["status"] = body.Status
	writeJSON(w, http.StatusOK, item)
}

func (s *server) markRead(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(req, "id")
	item, ok := s.find("messages", id)
	if !ok {
		writeError(w, http.StatusNotFound, "message "+id+" not found")
		return
	}
	item["status"] = "read"
	writeJSON(w, http.StatusOK, item)
}

// find and remove expect the caller to hold the lock.
func (s *server) find(name, id string) (record, bool) {
	for _, item := range s.collections[name] {
		if item["id"] == id {
			return item, true
		}
	}
	return nil, false
}

func (s *server) remove(name, id string) bool {
	items := s.collections[name]
	for i, item := range items {
		if item["id"] == id {
			s.collections[name] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func seed() map[string][]record {
	return map[string][]record{
		"agencies": {
			{"id": uuid.NewString(), "name": "Sahara Trails", "email": "contact@saharatrails.dz", "phone": "+213 555 10 20", "wilaya": "Tamanrasset"},
			{"id": uuid.NewString(), "name": "Casbah Tours", "email": "hello@casbahtours.dz", "phone": "+213 555 30 40", "wilaya": "Alger"},
			{"id": uuid.NewString(), "name": "Aures Adventures", "email": "info@auresadventures.dz", "phone": "+213 555 50 60", "wilaya": "Batna"},
		},
		"tourists": {
			{"id": uuid.NewString(), "fullName": "John Carter", "email": "john.carter@example.com", "phone": "+1 202 555 0101", "country": "United States"},
			{"id": uuid.NewString(), "fullName": "Joanna Reyes", "email": "joanna.reyes@example.com", "phone": "+34 600 555 202", "country": "Spain"},
			{"id": uuid.NewString(), "fullName": "Amine Bouzid", "email": "amine.bouzid@example.com", "phone": "+213 555 70 80", "country": "Algeria"},
		},
		"messages": {
			{"id": uuid.NewString(), "name": "Lena Haddad", "email": "lena.haddad@example.com", "subject": "Refund request", "body": "My trip to Djanet was cancelled, how do I get a refund?", "status": "unread", "receivedAt": "2026-08-20T09:30:00Z"},
			{"id": uuid.NewString(), "name": "Marco Ferraro", "email": "marco.ferraro@example.com", "subject": "Group booking", "body": "Do you support bookings for groups of 15 or more?", "status": "read", "receivedAt": "2026-08-18T14:05:00Z"},
		},
		"reports": {
			{"id": uuid.NewString(), "reporter": "Joanna Reyes", "targetType": "agency", "targetName": "Casbah Tours", "reason": "Listing photos do not match the actual tour.", "status": "pending", "createdAt": "2026-08-21T11:00:00Z"},
			{"id": uuid.NewString(), "reporter": "Amine Bouzid", "targetType": "tourist", "targetName": "John Carter", "reason": "Abusive review language.", "status": "reviewed", "createdAt": "2026-08-15T16:45:00Z"},
		},
		"categories": {
			{"id": uuid.NewString(), "name": "Desert Treks", "description": "Multi-day guided treks across the Sahara."},
			{"id": uuid.NewString(), "name": "Coastal Escapes", "description": "Beach and sea activities along the Mediterranean."},
			{"id": uuid.NewString(), "name": "Heritage Tours", "description": "Historic sites, casbahs and Roman ruins."},
		},
	}
}
