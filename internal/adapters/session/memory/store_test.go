package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStoreGetUnknownUserIsUnauthenticated(t *testing.T) {
	t.Parallel()

	store := NewStore()
	session := store.Get("user-1")

	assert.Equal(t, domain.Session{UserID: "user-1"}, session)
	assert.False(t, session.Authenticated())
}

func TestStoreSetOverwritesOnRelogin(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	store.Set("user-1", "token-1", first)
	store.Set("user-1", "token-2", second)

	session := store.Get("user-1")
	assert.Equal(t, "token-2", session.Token)
	assert.Equal(t, second, session.AcquiredAt)
}

func TestStoreClearIsIndistinguishableFromNeverLoggedIn(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Set("user-1", "token-1", time.Now())
	store.Clear("user-1")

	assert.Equal(t, domain.Session{UserID: "user-1"}, store.Get("user-1"))
}

func TestStoreConcurrentUsersDoNotInterfere(t *testing.T) {
	t.Parallel()

	store := NewStore()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			userID := fmt.Sprintf("user-%d", i)
			for j := 0; j < 100; j++ {
				store.Set(userID, fmt.Sprintf("token-%d-%d", i, j), now)
				_ = store.Get(userID)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		userID := fmt.Sprintf("user-%d", i)
		assert.Equal(t, fmt.Sprintf("token-%d-99", i), store.Get(userID).Token)
	}
}
