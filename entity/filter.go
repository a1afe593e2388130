package entity

// FilterCriteria holds the active facets of a school search.
// A zero value field places no constraint.
type FilterCriteria struct {
	Query         string `json:"q" validate:"max=200"`
	Governorate   string `json:"governorate" validate:"max=100"`
	Specialty     string `json:"specialty" validate:"max=200"`
	SchoolName    string `json:"school_name" validate:"max=300"`
	FavoritesOnly bool   `json:"favorites_only"`
}

// Facets lists the values the search form offers for each facet.
type Facets struct {
	Governorates []string `json:"governorates"`
	Specialties  []string `json:"specialties"`
	SchoolNames  []string `json:"school_names"`
}
