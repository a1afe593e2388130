package entity

import (
	"regexp"
	"strings"
)

// School is one row of the placement dataset. Values are immutable once parsed.
type School struct {
	ID                   string `json:"id" bson:"_id"`
	Name                 string `json:"name" bson:"name"`
	Governorate          string `json:"governorate" bson:"governorate"`
	City                 string `json:"city" bson:"city"`
	Specialty            string `json:"specialty" bson:"specialty"`
	Address              string `json:"address" bson:"address"`
	MapURL               string `json:"map_url" bson:"map_url"`
	EligibleGovernorates string `json:"eligible_governorates" bson:"eligible_governorates"`
	Status               string `json:"status" bson:"status"`
}

var specialtySeparator = regexp.MustCompile(`،|,`)

// SplitSpecialties splits a specialty column on the Arabic or Latin comma,
// trimming every label and dropping empty ones.
func SplitSpecialties(specialty string) []string {
	var labels []string
	for _, part := range specialtySeparator.Split(specialty, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

// Specialties returns the individual specialty labels of the school.
func (s *School) Specialties() []string {
	return SplitSpecialties(s.Specialty)
}
