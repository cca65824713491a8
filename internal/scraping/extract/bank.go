package extract

import "strings"

// ResolveBank returns the first catalog entry contained in cardName,
// ignoring case, or nil when none is. Catalog order breaks ties, so
// "Public Bank" must come before "Public" if both are listed.
func ResolveBank(cardName string, catalog []string) *string {
	name := strings.ToLower(cardName)
	for _, bank := range catalog {
		if strings.Contains(name, strings.ToLower(bank)) {
			match := bank
			return &match
		}
	}
	return nil
}
