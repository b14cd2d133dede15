package utils

import (
	"regexp"
	"strings"
)

// OrderIDPrefix is the fixed prefix of every order identifier.
const OrderIDPrefix = "MBR"

var orderIDPattern = regexp.MustCompile(`^MBR-\d+$`)

// NormalizeOrderID trims and uppercases a free-text order identifier and
// reports whether the result is well-formed (MBR-<digits>). Input is matched
// case-insensitively; storage and lookup always use the uppercase form.
func NormalizeOrderID(raw string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	return id, orderIDPattern.MatchString(id)
}
