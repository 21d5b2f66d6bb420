package validator

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Email validates that a string is a valid email address using RFC 5322
// parsing plus the restrictions typical web use expects (single @, dotted
// domain, no empty domain labels).
func Email() Validation[string] {
	return FromPredicate(isEmail, "must be a valid email address")
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL validates that a string is an absolute URL with a scheme and host.
func URL() Validation[string] {
	return FromPredicate(func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}

		return u.Scheme != "" && u.Host != ""
	}, "must be a valid URL")
}

// UUID validates standard UUID format with pre-validation to avoid
// expensive parsing.
func UUID() Validation[string] {
	return FromPredicate(func(value string) bool {
		// Fast rejection: check length and hyphen positions before parsing
		if len(value) != 36 {
			return false
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}

		_, err := uuid.Parse(value)
		return err == nil
	}, "must be a valid UUID")
}

// NonNilUUID validates that a UUID string parses and is not the nil UUID.
func NonNilUUID() Validation[string] {
	return UUID().And(FromPredicate(func(value string) bool {
		parsed, err := uuid.Parse(value)
		return err == nil && parsed != uuid.Nil
	}, "UUID cannot be nil"))
}
