package utils

import (
	"crypto/rand"
	"encoding/base64"

	"campus-pulse/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateCheckinCode produces the short code embedded in event QR payloads.
// The error must not be swallowed: an event stored with an empty code could
// never be checked in.
func GenerateCheckinCode() (string, error) {
	return gonanoid.Generate(idAlphabet, constants.CheckinCodeLength)
}

// GenerateRandomString generates a cryptographically secure random string
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to nanoid if crypto/rand fails
		id, _ := gonanoid.Generate(idAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}
