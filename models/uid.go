package models

import "crypto/rand"

// uidAlphabet drops 0, O, 1, I and L so the codes survive being read aloud
// or copied by hand. 31^6 is roughly 890 million combinations.
const uidAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const uidLength = 6

// NewUID returns a short human-safe record identifier.
func NewUID() string {
	buf := make([]byte, uidLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = uidAlphabet[int(b)%len(uidAlphabet)]
	}
	return string(buf)
}
