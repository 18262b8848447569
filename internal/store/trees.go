package store

import (
	"sync"

	"github.com/forgo/maingen/internal/model"
)

// TreeStore owns trees and the persons and relationships inside them.
// Person and relationship IDs are global across trees.
type TreeStore struct {
	mu            sync.RWMutex
	trees         map[int64]model.Tree
	persons       map[int64][]model.Person       // insertion order per tree
	relationships map[int64][]model.Relationship // insertion order per tree

	lastTreeID         int64
	lastPersonID       int64
	lastRelationshipID int64
}

// NewTreeStore creates an empty tree store
func NewTreeStore() *TreeStore {
	return &TreeStore{
		trees:         make(map[int64]model.Tree),
		persons:       make(map[int64][]model.Person),
		relationships: make(map[int64][]model.Relationship),
	}
}

// CreateTree allocates the next tree ID and records ownerEmail as its owner
func (s *TreeStore) CreateTree(ownerEmail, name string) model.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastTreeID++
	tree := model.Tree{
		ID:         s.lastTreeID,
		Name:       name,
		OwnerEmail: ownerEmail,
	}
	s.trees[tree.ID] = tree
	s.persons[tree.ID] = []model.Person{}
	s.relationships[tree.ID] = []model.Relationship{}
	return tree
}

// GetTree looks up a tree by ID
func (s *TreeStore) GetTree(treeID int64) (model.Tree, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.trees[treeID]
	return tree, ok
}

// AddPerson appends a person to a tree. The person counter is only advanced
// once the tree is known to exist.
func (s *TreeStore) AddPerson(treeID int64, fields model.PersonFields) (model.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trees[treeID]; !ok {
		return model.Person{}, ErrTreeNotFound
	}

	s.lastPersonID++
	person := model.Person{
		ID:        s.lastPersonID,
		TreeID:    treeID,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Gender:    fields.Gender,
		BirthDate: copyDate(fields.BirthDate),
	}
	s.persons[treeID] = append(s.persons[treeID], person)
	return clonePerson(person), nil
}

// ListPersons returns the persons of a tree in insertion order. Unknown
// trees yield an empty list rather than an error.
func (s *TreeStore) ListPersons(treeID int64) []model.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.persons[treeID]
	out := make([]model.Person, len(src))
	for i, p := range src {
		out[i] = clonePerson(p)
	}
	return out
}

// AddRelationship appends a relationship to a tree. Person IDs are stored
// as given.
func (s *TreeStore) AddRelationship(treeID int64, fields model.RelationshipFields) (model.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trees[treeID]; !ok {
		return model.Relationship{}, ErrTreeNotFound
	}

	s.lastRelationshipID++
	rel := model.Relationship{
		ID:        s.lastRelationshipID,
		TreeID:    treeID,
		PersonAID: fields.PersonAID,
		PersonBID: fields.PersonBID,
		Type:      fields.Type,
	}
	s.relationships[treeID] = append(s.relationships[treeID], rel)
	return rel, nil
}

// ListRelationships returns the relationships of a tree in insertion order.
// Unknown trees yield an empty list.
func (s *TreeStore) ListRelationships(treeID int64) []model.Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.relationships[treeID]
	out := make([]model.Relationship, len(src))
	copy(out, src)
	return out
}

// clonePerson detaches the birth date pointer from store state
func clonePerson(p model.Person) model.Person {
	p.BirthDate = copyDate(p.BirthDate)
	return p
}

func copyDate(d *model.Date) *model.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
