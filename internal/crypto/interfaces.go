// Package crypto seals the locally persisted secret at rest.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects a stored value. Seal and Open are inverses; Open also
// accepts values that were stored before sealing was enabled and returns them
// unchanged.
type Sealer interface {
	// Seal encrypts plaintext into a self-describing string safe to store.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Unsealed input is returned as-is.
	Open(stored string) (string, error)
}
