package common

import "github.com/google/uuid"

// ParseUUID accepts only the hyphenated 36-character form of a UUID and
// returns it lower-cased, so that it can be used as a lookup key.
func ParseUUID(s string) (string, error) {
	if len(s) != 36 {
		return "", ErrorInvalidID
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return "", ErrorInvalidID
	}
	return u.String(), nil
}
