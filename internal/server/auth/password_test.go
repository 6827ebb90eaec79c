package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost)

	for _, pw := range []string{"pw1", "correct horse battery staple", "пароль", ""} {
		hash, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("Hash(%q) error: %v", pw, err)
		}
		if hash == pw {
			t.Fatalf("hash equals plaintext")
		}
		if !h.Verify(pw, hash) {
			t.Fatalf("Verify(%q) = false, want true", pw)
		}
		if h.Verify(pw+"x", hash) {
			t.Fatalf("Verify accepted a different password for %q", pw)
		}
	}
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(bcrypt.MinCost)
	a, err := h.Hash("same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	t.Parallel()

	if NewPasswordHasher(bcrypt.MinCost).Verify("pw", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}

func TestPasswordHasher_TooLong(t *testing.T) {
	t.Parallel()

	_, err := NewPasswordHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 100))
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	if got := NewPasswordHasher(1).cost; got != bcrypt.MinCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MinCost)
	}
	if got := NewPasswordHasher(99).cost; got != bcrypt.MaxCost {
		t.Fatalf("cost = %d, want %d", got, bcrypt.MaxCost)
	}
}
