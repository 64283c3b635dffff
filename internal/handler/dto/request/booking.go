package request

import "strings"

// ReserveRequest carries the raw booking form fields. Field names match the
// wire format of the original front-end: only startDate, nomPrenom and
// telephone are required; maison and niveau fall back to configured
// defaults and an absent endDate means a one-day stay.
type ReserveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Maison    string `json:"maison,omitempty"`
	Niveau    string `json:"niveau,omitempty"`
	NomPrenom string `json:"nomPrenom"`
	Telephone string `json:"telephone"`
}

func (r ReserveRequest) TrimmedNomPrenom() string {
	return strings.TrimSpace(r.NomPrenom)
}

func (r ReserveRequest) TrimmedTelephone() string {
	return strings.TrimSpace(r.Telephone)
}
