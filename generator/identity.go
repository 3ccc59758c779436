package generator

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

var (
	emailDomains = []string{"gmail.com", "outlook.com", "yahoo.com", "company.com", "business.net", "corp.org"}
	areaCodes    = []string{"202", "212", "213", "214", "305", "312", "404", "415", "503", "617", "718", "832"}
	nonSlug      = regexp.MustCompile(`[^a-z0-9]`)
)

func phone(r *rand.Rand) string {
	return fmt.Sprintf("+1%s%d%d", choice(r, areaCodes), intBetween(r, 200, 999), intBetween(r, 1000, 9999))
}

// personalEmail picks one of the usual address shapes for a person.
func personalEmail(r *rand.Rand, first, last string) string {
	first, last = strings.ToLower(first), strings.ToLower(last)
	domain := choice(r, emailDomains)
	switch r.IntN(5) {
	case 0:
		return fmt.Sprintf("%s.%s@%s", first, last, domain)
	case 1:
		return fmt.Sprintf("%s%s@%s", first, last, domain)
	case 2:
		return fmt.Sprintf("%s%d@%s", first, intBetween(r, 1, 999), domain)
	case 3:
		return fmt.Sprintf("%s%d@%s", last, intBetween(r, 1, 999), domain)
	}
	return fmt.Sprintf("%s%s@%s", first[:min(1, len(first))], last, domain)
}

// slugify turns a company name into a domain label.
func slugify(name string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(name), "")
}
