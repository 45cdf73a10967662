package httpx

import (
	"encoding/base64"
	"strings"
)

// ParseBasicAuth decodes an Authorization header value carrying the HTTP
// basic scheme (base64 of "name:secret"). It is a pure parse: a missing,
// malformed, or non-basic header yields ok == false and is indistinguishable
// from an absent one. It never fails loudly for garbage input.
func ParseBasicAuth(header string) (name, secret string, ok bool) {
	const prefix = "Basic "

	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	name, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}

	return name, secret, true
}
