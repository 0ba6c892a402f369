package utils

import (
	"math/rand"
	"time"
)

// GenerateRandomToken produces a short alphanumeric code, used for the
// password reset flow.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rng.Intn(len(charset))]
	}
	return string(token)
}
