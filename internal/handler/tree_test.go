package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgo/maingen/internal/middleware"
	"github.com/forgo/maingen/internal/model"
	"github.com/forgo/maingen/internal/service"
	"github.com/forgo/maingen/internal/store"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestTreeHandler() (*TreeHandler, *store.TreeStore) {
	trees := store.NewTreeStore()
	return NewTreeHandler(service.NewTreeService(trees)), trees
}

func treeRequest(method, treeID, body string) *http.Request {
	req := jsonRequest(method, "/trees/"+treeID, body)
	req.SetPathValue("tree_id", treeID)
	return req.WithContext(middleware.WithUserEmail(req.Context(), "owner@example.com"))
}

// ============================================================================
// Tree Tests
// ============================================================================

func TestCreateTree_RecordsOwner(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()

	req := jsonRequest(http.MethodPost, "/trees", `{"name":"Romanov"}`)
	req = req.WithContext(middleware.WithUserEmail(req.Context(), "owner@example.com"))
	rr := httptest.NewRecorder()
	h.CreateTree(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["id"] != float64(1) || resp["name"] != "Romanov" {
		t.Errorf("unexpected tree response %v", resp)
	}
	if _, ok := resp["owner_email"]; ok {
		t.Error("owner must not be exposed")
	}

	tree, _ := trees.GetTree(1)
	if tree.OwnerEmail != "owner@example.com" {
		t.Errorf("expected owner recorded, got %q", tree.OwnerEmail)
	}
}

func TestCreateTree_MissingName_Returns422(t *testing.T) {
	t.Parallel()
	h, _ := newTestTreeHandler()

	for _, body := range []string{`{}`, `{"name":null}`} {
		rr := httptest.NewRecorder()
		h.CreateTree(rr, jsonRequest(http.MethodPost, "/trees", body))

		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", body, rr.Code)
			continue
		}
		if p := decodeProblem(t, rr); !hasFieldError(p, "name") {
			t.Errorf("%s: expected name field error, got %+v", body, p.Errors)
		}
	}
}

func TestCreateTree_EmptyName_Accepted(t *testing.T) {
	t.Parallel()
	h, _ := newTestTreeHandler()

	req := jsonRequest(http.MethodPost, "/trees", `{"name":""}`)
	req = req.WithContext(middleware.WithUserEmail(req.Context(), "owner@example.com"))
	rr := httptest.NewRecorder()
	h.CreateTree(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if body := rr.Body.String(); body != `{"id":1,"name":""}`+"\n" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestGetTree(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "Smith")

	tests := []struct {
		name       string
		treeID     string
		wantStatus int
	}{
		{"existing tree", "1", http.StatusOK},
		{"unknown tree", "99", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusUnprocessableEntity},
		{"zero id", "0", http.StatusNotFound},
		{"negative id", "-3", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.GetTree(rr, treeRequest(http.MethodGet, tt.treeID, ""))

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
			if tt.wantStatus == http.StatusNotFound {
				if p := decodeProblem(t, rr); p.Detail != "tree not found" {
					t.Errorf("expected detail 'tree not found', got %q", p.Detail)
				}
			}
			if tt.wantStatus == http.StatusUnprocessableEntity {
				if p := decodeProblem(t, rr); !hasFieldError(p, "tree_id") {
					t.Errorf("expected tree_id field error, got %+v", p.Errors)
				}
			}
		})
	}
}

// ============================================================================
// Person Tests
// ============================================================================

func TestAddPerson_ReturnsPerson(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "T")

	rr := httptest.NewRecorder()
	h.AddPerson(rr, treeRequest(http.MethodPost, "1", `{"first_name":"Ivan","last_name":"Petrov"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]any{
		"id":         float64(1),
		"tree_id":    float64(1),
		"first_name": "Ivan",
		"last_name":  "Petrov",
		"gender":     "unknown",
		"birth_date": nil,
	}
	for k, v := range want {
		got, ok := resp[k]
		if !ok {
			t.Errorf("missing key %q", k)
			continue
		}
		if got != v {
			t.Errorf("%s = %v, want %v", k, got, v)
		}
	}
}

func TestAddPerson_WithBirthDate(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "T")

	rr := httptest.NewRecorder()
	h.AddPerson(rr, treeRequest(http.MethodPost, "1",
		`{"first_name":"Anna","last_name":"K","gender":"female","birth_date":"1990-05-17"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var p model.Person
	if err := json.Unmarshal(rr.Body.Bytes(), &p); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if p.BirthDate == nil || p.BirthDate.String() != "1990-05-17" {
		t.Errorf("unexpected birth date %v", p.BirthDate)
	}
	if p.Gender != model.GenderFemale {
		t.Errorf("expected female, got %q", p.Gender)
	}
}

func TestAddPerson_Errors(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "T")

	tests := []struct {
		name       string
		treeID     string
		body       string
		wantStatus int
	}{
		{"unknown tree", "7", `{"first_name":"A","last_name":"B"}`, http.StatusNotFound},
		{"missing last name", "1", `{"first_name":"A"}`, http.StatusUnprocessableEntity},
		{"bad gender", "1", `{"first_name":"A","last_name":"B","gender":"other"}`, http.StatusUnprocessableEntity},
		{"bad date", "1", `{"first_name":"A","last_name":"B","birth_date":"17/05/1990"}`, http.StatusUnprocessableEntity},
		{"bad tree id", "x", `{"first_name":"A","last_name":"B"}`, http.StatusUnprocessableEntity},
		{"zero tree id", "0", `{"first_name":"A","last_name":"B"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.AddPerson(rr, treeRequest(http.MethodPost, tt.treeID, tt.body))
			if rr.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}

	if n := len(trees.ListPersons(1)); n != 0 {
		t.Errorf("failed requests must not add persons, got %d", n)
	}
}

func TestListPersons(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "T")
	for _, name := range []string{"A", "B", "C"} {
		if _, err := trees.AddPerson(1, model.PersonFields{FirstName: name, LastName: "X", Gender: model.GenderUnknown}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rr := httptest.NewRecorder()
	h.ListPersons(rr, treeRequest(http.MethodGet, "1", ""))

	var persons []model.Person
	if err := json.Unmarshal(rr.Body.Bytes(), &persons); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(persons) != 3 {
		t.Fatalf("expected 3 persons, got %d", len(persons))
	}
	for i, name := range []string{"A", "B", "C"} {
		if persons[i].FirstName != name {
			t.Errorf("persons[%d] = %q, want %q", i, persons[i].FirstName, name)
		}
	}
}

func TestListPersons_UnknownTree_ReturnsEmptyArray(t *testing.T) {
	t.Parallel()
	h, _ := newTestTreeHandler()

	for _, id := range []string{"55", "0", "-1"} {
		rr := httptest.NewRecorder()
		h.ListPersons(rr, treeRequest(http.MethodGet, id, ""))

		if rr.Code != http.StatusOK {
			t.Fatalf("tree %s: expected 200, got %d", id, rr.Code)
		}
		if body := rr.Body.String(); body != "[]\n" {
			t.Errorf("tree %s: expected empty JSON array, got %q", id, body)
		}
	}
}

// ============================================================================
// Relationship Tests
// ============================================================================

func TestAddRelationship(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "T")

	rr := httptest.NewRecorder()
	h.AddRelationship(rr, treeRequest(http.MethodPost, "1", `{"person_a_id":1,"person_b_id":2,"type":"spouse"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var rel model.Relationship
	if err := json.Unmarshal(rr.Body.Bytes(), &rel); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rel.ID != 1 || rel.TreeID != 1 || rel.PersonAID != 1 || rel.PersonBID != 2 || rel.Type != model.RelationshipSpouse {
		t.Errorf("unexpected relationship %+v", rel)
	}

	rr = httptest.NewRecorder()
	h.ListRelationships(rr, treeRequest(http.MethodGet, "1", ""))
	var rels []model.Relationship
	if err := json.Unmarshal(rr.Body.Bytes(), &rels); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rels) != 1 {
		t.Errorf("expected 1 relationship, got %d", len(rels))
	}
}

func TestAddRelationship_Errors(t *testing.T) {
	t.Parallel()
	h, trees := newTestTreeHandler()
	trees.CreateTree("owner@example.com", "T")

	tests := []struct {
		name       string
		treeID     string
		body       string
		wantStatus int
	}{
		{"unknown tree", "9", `{"person_a_id":1,"person_b_id":2,"type":"parent"}`, http.StatusNotFound},
		{"bad type", "1", `{"person_a_id":1,"person_b_id":2,"type":"cousin"}`, http.StatusUnprocessableEntity},
		{"missing person", "1", `{"person_a_id":1,"type":"parent"}`, http.StatusUnprocessableEntity},
		{"string id", "1", `{"person_a_id":"1","person_b_id":2,"type":"parent"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.AddRelationship(rr, treeRequest(http.MethodPost, tt.treeID, tt.body))
			if rr.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

// ============================================================================
// Health Tests
// ============================================================================

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "{\"status\":\"ok\"}\n" {
		t.Errorf("unexpected body %q", body)
	}
}
