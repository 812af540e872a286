package models

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	var u User
	u.SetPassword("s3cret-passphrase")

	if string(u.Password) == "s3cret-passphrase" {
		t.Fatal("password stored in plain text")
	}
	if err := u.ComparePassword("s3cret-passphrase"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := u.ComparePassword("wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
