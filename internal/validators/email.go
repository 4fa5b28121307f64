package validators

import "regexp"

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShapeValid checks the basic local@domain.tld shape. It does not
// verify the domain resolves.
func IsEmailShapeValid(email string) bool {
	return emailShape.MatchString(email)
}
