package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/forgo/maingen/internal/model"
	"github.com/forgo/maingen/internal/store"
)

// DefaultPassword is the password given to users created without one
const DefaultPassword = "testpass123"

// Factory creates test entities in the stores
type Factory struct {
	users  *store.UserStore
	tokens *store.TokenStore
	trees  *store.TreeStore
}

// New creates a new fixture factory
func New(users *store.UserStore, tokens *store.TokenStore, trees *store.TreeStore) *Factory {
	return &Factory{users: users, tokens: tokens, trees: trees}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// User Fixtures
// ============================================================================

// User is a registered account together with a valid access token
type User struct {
	Email    string
	Password string
	Token    string
}

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Password string
}

// WithEmail sets the user's email
func WithEmail(email string) func(*UserOpts) {
	return func(o *UserOpts) { o.Email = email }
}

// WithPassword sets the user's password
func WithPassword(password string) func(*UserOpts) {
	return func(o *UserOpts) { o.Password = password }
}

// CreateUser registers a user and issues a token for it
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Password: DefaultPassword,
	}
	for _, fn := range opts {
		fn(o)
	}

	if err := f.users.CreateUser(context.Background(), o.Email, o.Password); err != nil {
		t.Fatalf("fixtures: failed to create user %s: %v", o.Email, err)
	}
	token, err := f.tokens.Issue(o.Email)
	if err != nil {
		t.Fatalf("fixtures: failed to issue token: %v", err)
	}

	return &User{Email: o.Email, Password: o.Password, Token: token}
}

// ============================================================================
// Tree Fixtures
// ============================================================================

// CreateTree creates a tree owned by user. An empty name picks a random one.
func (f *Factory) CreateTree(t *testing.T, owner *User, name ...string) model.Tree {
	t.Helper()

	treeName := "tree_" + randomID()
	if len(name) > 0 && name[0] != "" {
		treeName = name[0]
	}
	return f.trees.CreateTree(owner.Email, treeName)
}

// ============================================================================
// Person Fixtures
// ============================================================================

// WithName sets the person's names
func WithName(first, last string) func(*model.PersonFields) {
	return func(p *model.PersonFields) {
		p.FirstName = first
		p.LastName = last
	}
}

// WithGender sets the person's gender
func WithGender(g model.Gender) func(*model.PersonFields) {
	return func(p *model.PersonFields) { p.Gender = g }
}

// WithBirthDate sets the person's birth date
func WithBirthDate(d model.Date) func(*model.PersonFields) {
	return func(p *model.PersonFields) { p.BirthDate = &d }
}

// CreatePerson adds a person to tree
func (f *Factory) CreatePerson(t *testing.T, tree model.Tree, opts ...func(*model.PersonFields)) model.Person {
	t.Helper()

	fields := model.PersonFields{
		FirstName: "first_" + randomID(),
		LastName:  "last_" + randomID(),
		Gender:    model.GenderUnknown,
	}
	for _, fn := range opts {
		fn(&fields)
	}

	person, err := f.trees.AddPerson(tree.ID, fields)
	if err != nil {
		t.Fatalf("fixtures: failed to add person to tree %d: %v", tree.ID, err)
	}
	return person
}

// ============================================================================
// Relationship Fixtures
// ============================================================================

// CreateRelationship links a and b within tree
func (f *Factory) CreateRelationship(t *testing.T, tree model.Tree, a, b model.Person, kind model.RelationshipType) model.Relationship {
	t.Helper()

	rel, err := f.trees.AddRelationship(tree.ID, model.RelationshipFields{
		PersonAID: a.ID,
		PersonBID: b.ID,
		Type:      kind,
	})
	if err != nil {
		t.Fatalf("fixtures: failed to add relationship to tree %d: %v", tree.ID, err)
	}
	return rel
}
