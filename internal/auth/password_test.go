package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := ComparePassword(hash, "s3cret!"); err != nil {
		t.Errorf("ComparePassword() error = %v", err)
	}
	if err := ComparePassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("ComparePassword() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestHashPasswordClampsCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
