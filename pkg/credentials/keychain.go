package credentials

import (
	"encoding/json"
	"time"

	"github.com/zalando/go-keyring"

	projerrors "thoreinstein.com/projinit/pkg/errors"
)

const (
	// KeyringService is the keychain service name for projinit.
	KeyringService = "projinit-github"
	// KeyringAccount is the keychain account the token is stored under.
	KeyringAccount = "token"
)

// Store persists a single GitHub token.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

type storedToken struct {
	AccessToken string    `json:"access_token"`
	Source      string    `json:"source,omitempty"` // "pat" or "device"
	SavedAt     time.Time `json:"saved_at"`
}

// KeychainStore uses macOS keychain / Linux secret service / Windows credential manager.
type KeychainStore struct {
	service string
	account string
	source  string
}

var _ Store = (*KeychainStore)(nil)

// NewKeychainStore returns the store used by 'projinit auth'.
func NewKeychainStore() *KeychainStore {
	return &KeychainStore{service: KeyringService, account: KeyringAccount, source: "pat"}
}

// WithSource records how the next token passed to Set was obtained.
func (k *KeychainStore) WithSource(source string) *KeychainStore {
	cp := *k
	cp.source = source
	return &cp
}

// Get returns the stored token, or "" when none is stored.
func (k *KeychainStore) Get() (string, error) {
	data, err := keyring.Get(k.service, k.account)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", nil
		}
		return "", projerrors.NewCredentialErrorWithCause("failed to read from keychain", err)
	}

	var stored storedToken
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return "", projerrors.NewCredentialErrorWithCause("failed to parse keychain entry", err)
	}

	return stored.AccessToken, nil
}

// Set stores token in the keychain, replacing any previous entry.
func (k *KeychainStore) Set(token string) error {
	if token == "" {
		return projerrors.NewCredentialError("refusing to store an empty token")
	}

	data, err := json.Marshal(storedToken{AccessToken: token, Source: k.source, SavedAt: time.Now().UTC()})
	if err != nil {
		return projerrors.NewCredentialErrorWithCause("failed to serialize token", err)
	}

	if err := keyring.Set(k.service, k.account, string(data)); err != nil {
		return projerrors.NewCredentialErrorWithCause("failed to save to keychain", err)
	}

	return nil
}

// Clear removes the token from the keychain. Clearing an absent entry is not an error.
func (k *KeychainStore) Clear() error {
	err := keyring.Delete(k.service, k.account)
	if err != nil && err != keyring.ErrNotFound {
		return projerrors.NewCredentialErrorWithCause("failed to clear keychain", err)
	}
	return nil
}
