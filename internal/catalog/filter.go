package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"AtsAssistant/entity"
)

// Filter returns the schools matching every non-empty criterion, in input order.
// favorites is only consulted when criteria.FavoritesOnly is set.
func Filter(schools []entity.School, criteria entity.FilterCriteria, favorites map[string]struct{}) []entity.School {
	lower := cases.Lower(language.Und)
	query := strings.TrimSpace(lower.String(criteria.Query))

	result := make([]entity.School, 0, len(schools))
	for _, s := range schools {
		if query != "" &&
			!strings.Contains(lower.String(s.Name), query) &&
			!strings.Contains(lower.String(s.Specialty), query) &&
			!strings.Contains(lower.String(s.Governorate), query) {
			continue
		}
		if criteria.Governorate != "" && s.Governorate != criteria.Governorate {
			continue
		}
		// substring, not token match
		if criteria.Specialty != "" && !strings.Contains(s.Specialty, criteria.Specialty) {
			continue
		}
		if criteria.SchoolName != "" && s.Name != criteria.SchoolName {
			continue
		}
		if criteria.FavoritesOnly {
			if _, ok := favorites[s.ID]; !ok {
				continue
			}
		}
		result = append(result, s)
	}

	return result
}

// Specialties returns the sorted set of individual specialty labels.
func Specialties(schools []entity.School) []string {
	seen := make(map[string]struct{})
	for _, s := range schools {
		for _, label := range entity.SplitSpecialties(s.Specialty) {
			seen[label] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// SchoolNames returns the sorted set of non-empty school names.
func SchoolNames(schools []entity.School) []string {
	seen := make(map[string]struct{})
	for _, s := range schools {
		if s.Name != "" {
			seen[s.Name] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
