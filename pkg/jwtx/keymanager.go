package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/lumenlab/whisperbox/pkg/cryptox"
)

// KeyManager manages session signing and verification keys for an instance.
// Keys are EdDSA (Ed25519) only. Multiple signing keys are held so signing
// load is spread out and a key can be retired without downtime.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
	mu      sync.RWMutex
}

// KeyManagerOptions configures the KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) that will be validated in tokens.
	Issuer string

	// NumKeys specifies how many signing keys to generate.
	// Defaults to 3 if not specified. Minimum is 1, maximum is 10.
	NumKeys int
}

// NewEphemeralKeyManager creates a new KeyManager with ephemeral Ed25519
// keys. The keys are generated on the fly and only exist in memory, so
// every session token becomes invalid when the service restarts. For an
// anonymous-messaging dashboard that trade-off is fine: owners just sign
// in again.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	numKeys := opts.NumKeys
	if numKeys <= 0 {
		numKeys = 3
	}
	if numKeys > 10 {
		numKeys = 10
	}

	keyset := NewKeySet()
	signers := make([]Signer, 0, numKeys)

	for i := 0; i < numKeys; i++ {
		keyID, err := generateRandomKeyID()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key ID: %w", err)
		}

		pemBytes, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key %d: %w", i+1, err)
		}

		signer, err := NewSignerEdDSA(keyID, pemBytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to build signer %d: %w", i+1, err)
		}

		signers = append(signers, signer)

		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: failed to add signer %d to keyset: %w", i+1, err)
		}
	}

	return &KeyManager{
		Verifier: NewCommonEdDSA(keyset, opts.Issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// GetSigner returns a randomly selected signer from the available signing
// keys. If only one key exists, it returns that key consistently.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	if len(km.signers) == 0 {
		return nil
	}
	if len(km.signers) == 1 {
		return km.signers[0]
	}

	idx := rand.IntN(len(km.signers))
	return km.signers[idx]
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// generateRandomKeyID creates a random key identifier using cryptographic
// entropy. Format: "whisperbox-{random-token}".
func generateRandomKeyID() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("failed to generate random key ID: %w", err)
	}
	return fmt.Sprintf("whisperbox-%s", token), nil
}
