package models

import (
	"strings"
	"testing"
)

func TestNewUIDShape(t *testing.T) {
	uid := NewUID()
	if len(uid) != 6 {
		t.Fatalf("expected 6 characters, got %q", uid)
	}
	for _, r := range uid {
		if !strings.ContainsRune(uidAlphabet, r) {
			t.Fatalf("character %q not in alphabet", r)
		}
	}
}

func TestNewUIDDoesNotRepeatQuickly(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		uid := NewUID()
		if seen[uid] {
			t.Fatalf("duplicate UID %q after %d draws", uid, i)
		}
		seen[uid] = true
	}
}
