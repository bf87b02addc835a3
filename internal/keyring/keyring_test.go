package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestPassphraseLifecycle(t *testing.T) {
	keyring.MockInit()

	const id = "id-abc"
	if HasPassphrase(id) {
		t.Fatal("Expected empty keyring")
	}

	if err := SavePassphrase(id, "hunter2"); err != nil {
		t.Fatalf("SavePassphrase failed: %v", err)
	}
	if !HasPassphrase(id) {
		t.Error("Expected stored passphrase")
	}

	got, err := Store{}.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "hunter2" {
		t.Errorf("Passphrase mismatch: got %q", got)
	}

	if err := DeletePassphrase(id); err != nil {
		t.Fatalf("DeletePassphrase failed: %v", err)
	}
	if _, err := (Store{}).Get(id); !errors.Is(err, keyring.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
