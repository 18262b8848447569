// Package password provides the one-way password digest capability used by
// the user store.
//
// Digests are produced with bcrypt. bcrypt is deliberately CPU-expensive, so
// the Hasher bounds how many hash or compare computations run at once:
//
//	h := password.NewHasher(password.Config{Cost: 12, MaxConcurrent: 4})
//
//	digest, err := h.Hash(ctx, "secret123")
//	ok := h.Verify(ctx, "secret123", digest)
//
// Callers waiting for a slot give up when their context is cancelled.
package password
