// Package fixtures provides test data factories for the MainGen API.
//
// # Factory Pattern
//
// Create a factory over the stores under test:
//
//	f := fixtures.New(srv.Users, srv.Tokens, srv.Trees)
//
// # Creating Test Data
//
//	user := f.CreateUser(t)                           // random email, known password, live token
//	tree := f.CreateTree(t, user)                     // tree owned by user
//	ivan := f.CreatePerson(t, tree, WithName("Ivan", "Petrov"))
//	f.CreateRelationship(t, tree, ivan, anna, model.RelationshipSpouse)
//
// # Random Data
//
// Emails are unique per call, so factories can be shared across parallel tests.
package fixtures
