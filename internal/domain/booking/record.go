package booking

import "strings"

// Record is the persisted payload for one reserved slot. A multi-day stay is
// stored as N single-day records with identical payload. Field order matches
// the snapshot format.
type Record struct {
	Prenom    string `json:"prenom"`
	Nom       string `json:"nom"`
	Telephone string `json:"telephone"`
}

// SplitFullName splits a free-text full name into (nom, prenom): the last
// whitespace-separated token is the surname, everything before it is the
// given name joined by single spaces. A single token is all surname; an
// empty input yields two empty strings. Purely structural, never fails.
func SplitFullName(full string) (nom, prenom string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
	}
}

// NewRecord builds the stored record from the raw request fields.
func NewRecord(fullName, telephone string) Record {
	nom, prenom := SplitFullName(fullName)
	return Record{
		Prenom:    prenom,
		Nom:       nom,
		Telephone: telephone,
	}
}
