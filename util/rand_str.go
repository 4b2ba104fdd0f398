// Package util contains any functions used across the application that don't match
// any other package
package util

import "math/rand"

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandStr returns a random alphanumeric string of length n. Used for request
// IDs and generated upload file names, so collisions only need to be unlikely,
// not impossible. The global locked source keeps this safe under concurrent
// handlers.
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}

	return string(b)
}
