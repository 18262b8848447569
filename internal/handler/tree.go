package handler

import (
	"context"
	"net/http"

	"github.com/forgo/maingen/internal/middleware"
	"github.com/forgo/maingen/internal/model"
)

// TreeManager is the subset of the tree service used by TreeHandler
type TreeManager interface {
	CreateTree(ctx context.Context, ownerEmail string, req model.CreateTreeRequest) model.Tree
	GetTree(ctx context.Context, treeID int64) (model.Tree, error)
	AddPerson(ctx context.Context, treeID int64, req model.CreatePersonRequest) (model.Person, error)
	ListPersons(ctx context.Context, treeID int64) []model.Person
	AddRelationship(ctx context.Context, treeID int64, req model.CreateRelationshipRequest) (model.Relationship, error)
	ListRelationships(ctx context.Context, treeID int64) []model.Relationship
}

// TreeHandler handles tree, person and relationship endpoints
type TreeHandler struct {
	treeService TreeManager
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService TreeManager) *TreeHandler {
	return &TreeHandler{treeService: treeService}
}

// CreateTree handles POST /trees
func (h *TreeHandler) CreateTree(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTreeRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, invalidBody(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	owner := middleware.GetUserEmail(r.Context())
	tree := h.treeService.CreateTree(r.Context(), owner, req)

	WriteJSON(w, http.StatusOK, tree)
}

// GetTree handles GET /trees/{tree_id}
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	treeID, problem := parseTreeID(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	tree, err := h.treeService.GetTree(r.Context(), treeID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, tree)
}

// AddPerson handles POST /trees/{tree_id}/persons
func (h *TreeHandler) AddPerson(w http.ResponseWriter, r *http.Request) {
	treeID, problem := parseTreeID(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	var req model.CreatePersonRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, invalidBody(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	person, err := h.treeService.AddPerson(r.Context(), treeID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// ListPersons handles GET /trees/{tree_id}/persons
func (h *TreeHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	treeID, problem := parseTreeID(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	WriteJSON(w, http.StatusOK, h.treeService.ListPersons(r.Context(), treeID))
}

// AddRelationship handles POST /trees/{tree_id}/relationships
func (h *TreeHandler) AddRelationship(w http.ResponseWriter, r *http.Request) {
	treeID, problem := parseTreeID(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	var req model.CreateRelationshipRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, invalidBody(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	rel, err := h.treeService.AddRelationship(r.Context(), treeID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, rel)
}

// ListRelationships handles GET /trees/{tree_id}/relationships
func (h *TreeHandler) ListRelationships(w http.ResponseWriter, r *http.Request) {
	treeID, problem := parseTreeID(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	WriteJSON(w, http.StatusOK, h.treeService.ListRelationships(r.Context(), treeID))
}
