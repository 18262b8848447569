package store

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/maingen/internal/model"
)

func ivan() model.PersonFields {
	return model.PersonFields{FirstName: "Ivan", LastName: "Ivanov", Gender: model.GenderMale}
}

func TestTreeStore_CreateAndGetTree(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()

	tree := s.CreateTree("user@example.com", "Family")
	assert.Equal(t, int64(1), tree.ID)
	assert.Equal(t, "Family", tree.Name)
	assert.Equal(t, "user@example.com", tree.OwnerEmail)

	got, ok := s.GetTree(tree.ID)
	require.True(t, ok)
	assert.Equal(t, tree, got)

	_, ok = s.GetTree(99)
	assert.False(t, ok)
}

func TestTreeStore_TreeIDsIncrease(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()

	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, s.CreateTree("user@example.com", "Tree").ID)
	}
}

func TestTreeStore_AddAndListPersons_InsertionOrder(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")

	names := []string{"Ivan", "Maria", "Pyotr", "Anna", "Olga"}
	for _, name := range names {
		_, err := s.AddPerson(tree.ID, model.PersonFields{FirstName: name, LastName: "Ivanov", Gender: model.GenderUnknown})
		require.NoError(t, err)
	}

	persons := s.ListPersons(tree.ID)
	require.Len(t, persons, len(names))
	for i, p := range persons {
		assert.Equal(t, names[i], p.FirstName)
		assert.Equal(t, "Ivanov", p.LastName)
		assert.Equal(t, tree.ID, p.TreeID)
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestTreeStore_AddPerson_KeepsFields(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")
	born := model.NewDate(1950, time.March, 14)

	p, err := s.AddPerson(tree.ID, model.PersonFields{
		FirstName: "Maria",
		LastName:  "Ivanova",
		Gender:    model.GenderFemale,
		BirthDate: &born,
	})
	require.NoError(t, err)

	assert.Equal(t, model.GenderFemale, p.Gender)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, "1950-03-14", p.BirthDate.String())
}

func TestTreeStore_ReturnedRecordsAreCopies(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")
	born := model.NewDate(1950, time.March, 14)

	p, err := s.AddPerson(tree.ID, model.PersonFields{FirstName: "Maria", LastName: "Ivanova", BirthDate: &born})
	require.NoError(t, err)

	*p.BirthDate = model.NewDate(2000, time.January, 1)
	born = model.NewDate(2001, time.January, 1)
	listed := s.ListPersons(tree.ID)
	listed[0].FirstName = "changed"

	again := s.ListPersons(tree.ID)
	assert.Equal(t, "Maria", again[0].FirstName)
	assert.Equal(t, "1950-03-14", again[0].BirthDate.String())
}

func TestTreeStore_ListPersons_UnknownTreeIsEmpty(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()

	persons := s.ListPersons(42)
	assert.NotNil(t, persons)
	assert.Empty(t, persons)
}

func TestTreeStore_AddPerson_UnknownTree_DoesNotAllocateID(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")

	first, err := s.AddPerson(tree.ID, ivan())
	require.NoError(t, err)

	_, err = s.AddPerson(999, ivan())
	assert.ErrorIs(t, err, ErrTreeNotFound)

	second, err := s.AddPerson(tree.ID, ivan())
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestTreeStore_AddRelationship_UnknownTree_DoesNotAllocateID(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")
	fields := model.RelationshipFields{PersonAID: 1, PersonBID: 2, Type: model.RelationshipSpouse}

	_, err := s.AddRelationship(999, fields)
	assert.ErrorIs(t, err, ErrTreeNotFound)

	rel, err := s.AddRelationship(tree.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rel.ID)
	assert.Equal(t, tree.ID, rel.TreeID)
	assert.Equal(t, model.RelationshipSpouse, rel.Type)
}

func TestTreeStore_AddRelationship_DoesNotCheckPersons(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")

	rel, err := s.AddRelationship(tree.ID, model.RelationshipFields{PersonAID: 100, PersonBID: 200, Type: model.RelationshipParent})
	require.NoError(t, err)
	assert.Equal(t, int64(100), rel.PersonAID)
	assert.Equal(t, int64(200), rel.PersonBID)

	assert.Equal(t, []model.Relationship{rel}, s.ListRelationships(tree.ID))
	assert.Empty(t, s.ListRelationships(999))
}

func TestTreeStore_GlobalCountersAcrossTrees(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	a := s.CreateTree("user@example.com", "A")
	b := s.CreateTree("user@example.com", "B")

	p1, _ := s.AddPerson(a.ID, ivan())
	p2, _ := s.AddPerson(b.ID, ivan())
	p3, _ := s.AddPerson(a.ID, ivan())
	assert.Equal(t, []int64{1, 2, 3}, []int64{p1.ID, p2.ID, p3.ID})

	r1, _ := s.AddRelationship(b.ID, model.RelationshipFields{PersonAID: p2.ID, PersonBID: p2.ID, Type: model.RelationshipParent})
	r2, _ := s.AddRelationship(a.ID, model.RelationshipFields{PersonAID: p1.ID, PersonBID: p3.ID, Type: model.RelationshipSpouse})
	assert.Equal(t, []int64{1, 2}, []int64{r1.ID, r2.ID})

	assert.Len(t, s.ListPersons(a.ID), 2)
	assert.Len(t, s.ListPersons(b.ID), 1)
}

func TestTreeStore_ConcurrentInserts_UniqueGapFreeIDs(t *testing.T) {
	t.Parallel()
	s := NewTreeStore()
	tree := s.CreateTree("user@example.com", "Family")

	const workers = 16
	const perWorker = 100
	var mu sync.Mutex
	var personIDs, treeIDs []int64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				p, err := s.AddPerson(tree.ID, ivan())
				if err != nil {
					t.Errorf("add person: %v", err)
					return
				}
				tr := s.CreateTree("user@example.com", "Other")
				mu.Lock()
				personIDs = append(personIDs, p.ID)
				treeIDs = append(treeIDs, tr.ID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(personIDs, func(i, j int) bool { return personIDs[i] < personIDs[j] })
	sort.Slice(treeIDs, func(i, j int) bool { return treeIDs[i] < treeIDs[j] })
	for i := range personIDs {
		assert.Equal(t, int64(i+1), personIDs[i])
		assert.Equal(t, int64(i+2), treeIDs[i])
	}
	assert.Len(t, s.ListPersons(tree.ID), workers*perWorker)
}
