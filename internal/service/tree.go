package service

import (
	"context"
	"log/slog"

	"github.com/forgo/maingen/internal/model"
)

// TreeRepository defines the interface for tree, person and relationship storage
type TreeRepository interface {
	CreateTree(ownerEmail, name string) model.Tree
	GetTree(treeID int64) (model.Tree, bool)
	AddPerson(treeID int64, fields model.PersonFields) (model.Person, error)
	ListPersons(treeID int64) []model.Person
	AddRelationship(treeID int64, fields model.RelationshipFields) (model.Relationship, error)
	ListRelationships(treeID int64) []model.Relationship
}

// TreeService handles family tree operations.
//
// Ownership is recorded at creation but not enforced: any authenticated
// caller may read or extend any tree.
type TreeService struct {
	repo TreeRepository
}

// NewTreeService creates a new tree service
func NewTreeService(repo TreeRepository) *TreeService {
	return &TreeService{repo: repo}
}

// CreateTree creates a tree owned by ownerEmail
func (s *TreeService) CreateTree(ctx context.Context, ownerEmail string, req model.CreateTreeRequest) model.Tree {
	tree := s.repo.CreateTree(ownerEmail, req.TreeName())

	slog.InfoContext(ctx, "tree created",
		slog.Int64("tree_id", tree.ID),
		slog.String("owner", ownerEmail),
	)
	return tree
}

// GetTree returns a tree by ID
func (s *TreeService) GetTree(ctx context.Context, treeID int64) (model.Tree, error) {
	tree, ok := s.repo.GetTree(treeID)
	if !ok {
		return model.Tree{}, ErrTreeNotFound
	}
	return tree, nil
}

// AddPerson adds a person to an existing tree
func (s *TreeService) AddPerson(ctx context.Context, treeID int64, req model.CreatePersonRequest) (model.Person, error) {
	person, err := s.repo.AddPerson(treeID, req.Fields())
	if err != nil {
		return model.Person{}, err
	}

	slog.DebugContext(ctx, "person added",
		slog.Int64("tree_id", treeID),
		slog.Int64("person_id", person.ID),
	)
	return person, nil
}

// ListPersons returns a tree's persons in insertion order. An unknown tree
// is indistinguishable from an empty one here, unlike AddPerson.
func (s *TreeService) ListPersons(ctx context.Context, treeID int64) []model.Person {
	return s.repo.ListPersons(treeID)
}

// AddRelationship links two persons of an existing tree. Person IDs are not
// checked.
func (s *TreeService) AddRelationship(ctx context.Context, treeID int64, req model.CreateRelationshipRequest) (model.Relationship, error) {
	rel, err := s.repo.AddRelationship(treeID, req.Fields())
	if err != nil {
		return model.Relationship{}, err
	}

	slog.DebugContext(ctx, "relationship added",
		slog.Int64("tree_id", treeID),
		slog.Int64("relationship_id", rel.ID),
		slog.String("type", string(rel.Type)),
	)
	return rel, nil
}

// ListRelationships returns a tree's relationships in insertion order
func (s *TreeService) ListRelationships(ctx context.Context, treeID int64) []model.Relationship {
	return s.repo.ListRelationships(treeID)
}
