package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"MediSure/config/jwt"
	"MediSure/repository"
	"MediSure/session"
	"MediSure/util"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type authFixture struct {
	users    *repository.MemoryUserRepository
	sessions *session.MemoryStore
	tokens   *jwt.Manager
	auth     *AuthService
	resolver *AuthResolver
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    repository.NewMemoryUserRepository(),
		sessions: session.NewMemoryStore(15 * 24 * time.Hour),
		tokens:   jwt.NewManager("test-secret", 15*24*time.Hour),
	}
	f.auth = NewAuthService(f.users, f.sessions, f.tokens).WithHashCost(bcrypt.MinCost)
	f.resolver = NewAuthResolver(f.users, f.sessions, f.tokens)
	return f
}

func validSignup() SignupInput {
	return SignupInput{
		DisplayName:     "Dr. Jane Doe",
		Email:           "jane@clinic.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func requireKind(t *testing.T, err error, kind util.Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	appErr := util.AsAppError(err)
	require.Equal(t, kind, appErr.Kind)
	if msg != "" {
		require.Equal(t, msg, appErr.Message)
	}
}

// mapCache stands in for the redis cache, round-tripping through JSON the same way.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	hits    int
	failGet bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) SetCache(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *mapCache) GetCache(_ context.Context, key string, dst interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return false, errors.New("cache unavailable")
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(data, dst)
}
