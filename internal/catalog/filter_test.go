package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AtsAssistant/entity"
)

func sampleSchools() []entity.School {
	return []entity.School{
		{ID: "S001", Name: "Example School", Governorate: "القاهرة", Specialty: "Science, Arts"},
		{ID: "S002", Name: "مدرسة النيل", Governorate: "الجيزة", Specialty: "الكهرباء، الميكانيكا"},
		{ID: "S003", Name: "Delta Tech", Governorate: "الغربية", Specialty: "Computer Science"},
		{ID: "S004", Name: "Example School", Governorate: "الجيزة", Specialty: "Nursing"},
		{ID: "S005", Name: "مدرسة الكهرباء", Governorate: "القاهرة", Specialty: "الكهرباء"},
	}
}

func ids(schools []entity.School) []string {
	out := make([]string, 0, len(schools))
	for _, s := range schools {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterScenarios(t *testing.T) {
	one := Parse(header + "\n" + `S001,Example School,القاهرة,Cairo,"Science, Arts",,,Addr,http://map,القاهرة,لا`)

	assert.Empty(t, Filter(one, entity.FilterCriteria{Governorate: "الجيزة"}, nil))
	assert.Equal(t, []string{"S001"}, ids(Filter(one, entity.FilterCriteria{Query: "exam"}, nil)))
	assert.Equal(t, []string{"S001"}, ids(Filter(one, entity.FilterCriteria{Query: "  EXAM "}, nil)))
}

func TestFilterCriteria(t *testing.T) {
	favorites := map[string]struct{}{"S002": {}, "S005": {}, "missing": {}}

	tests := []struct {
		name     string
		criteria entity.FilterCriteria
		want     []string
	}{
		{"no criteria", entity.FilterCriteria{}, []string{"S001", "S002", "S003", "S004", "S005"}},
		{"query by name", entity.FilterCriteria{Query: "delta"}, []string{"S003"}},
		{"query by specialty", entity.FilterCriteria{Query: "science"}, []string{"S001", "S003"}},
		{"query by governorate", entity.FilterCriteria{Query: "الجيزة"}, []string{"S002", "S004"}},
		{"query arabic in name and specialty", entity.FilterCriteria{Query: "الكهرباء"}, []string{"S002", "S005"}},
		{"governorate exact", entity.FilterCriteria{Governorate: "القاهرة"}, []string{"S001", "S005"}},
		{"governorate partial does not match", entity.FilterCriteria{Governorate: "القاه"}, []string{}},
		{"specialty substring", entity.FilterCriteria{Specialty: "Science"}, []string{"S001", "S003"}},
		{"specialty is case sensitive", entity.FilterCriteria{Specialty: "science"}, []string{}},
		{"school name exact", entity.FilterCriteria{SchoolName: "Example School"}, []string{"S001", "S004"}},
		{"school name partial does not match", entity.FilterCriteria{SchoolName: "Example"}, []string{}},
		{"favorites only", entity.FilterCriteria{FavoritesOnly: true}, []string{"S002", "S005"}},
		{"combined", entity.FilterCriteria{Query: "example", Governorate: "الجيزة"}, []string{"S004"}},
		{"combined with favorites", entity.FilterCriteria{Governorate: "القاهرة", FavoritesOnly: true}, []string{"S005"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleSchools(), tt.criteria, favorites)))
		})
	}
}

func TestFilterFavoritesOnlyWithNoFavorites(t *testing.T) {
	assert.Empty(t, Filter(sampleSchools(), entity.FilterCriteria{FavoritesOnly: true}, nil))
}

func TestFilterIgnoresFavoritesWhenFlagOff(t *testing.T) {
	got := Filter(sampleSchools(), entity.FilterCriteria{}, map[string]struct{}{"S001": {}})
	assert.Len(t, got, 5)
}

// every single-criterion variant of a full criteria set
func criteriaVariants(full entity.FilterCriteria) []entity.FilterCriteria {
	return []entity.FilterCriteria{
		{Query: full.Query},
		{Governorate: full.Governorate},
		{Specialty: full.Specialty},
		{SchoolName: full.SchoolName},
		{FavoritesOnly: full.FavoritesOnly},
	}
}

func TestFilterMonotonic(t *testing.T) {
	schools := sampleSchools()
	favorites := map[string]struct{}{"S001": {}, "S004": {}}
	full := entity.FilterCriteria{
		Query:         "example",
		Governorate:   "الجيزة",
		Specialty:     "Nurs",
		SchoolName:    "Example School",
		FavoritesOnly: true,
	}

	clearers := []func(c *entity.FilterCriteria){
		func(c *entity.FilterCriteria) { c.Query = "" },
		func(c *entity.FilterCriteria) { c.Governorate = "" },
		func(c *entity.FilterCriteria) { c.Specialty = "" },
		func(c *entity.FilterCriteria) { c.SchoolName = "" },
		func(c *entity.FilterCriteria) { c.FavoritesOnly = false },
	}

	with := Filter(schools, full, favorites)
	for i, fn := range clearers {
		relaxed := full
		fn(&relaxed)
		without := Filter(schools, relaxed, favorites)
		assert.LessOrEqual(t, len(with), len(without), "criterion %d", i)
	}
}

func TestFilterSequentialNarrowingMatchesCombined(t *testing.T) {
	schools := sampleSchools()
	favorites := map[string]struct{}{"S001": {}, "S003": {}, "S004": {}}
	full := entity.FilterCriteria{
		Query:         "sc",
		Specialty:     "Science",
		FavoritesOnly: true,
	}
	combined := Filter(schools, full, favorites)
	require.Equal(t, []string{"S001", "S003"}, ids(combined))

	variants := criteriaVariants(full)
	orders := [][]int{{0, 1, 2, 3, 4}, {4, 3, 2, 1, 0}, {2, 0, 4, 1, 3}}
	for _, order := range orders {
		narrowed := schools
		for _, i := range order {
			narrowed = Filter(narrowed, variants[i], favorites)
		}
		assert.Equal(t, ids(combined), ids(narrowed), "order %v", order)
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	schools := sampleSchools()
	before := sampleSchools()

	got := Filter(schools, entity.FilterCriteria{Query: "e"}, nil)
	assert.Equal(t, before, schools)

	prev := -1
	for _, s := range got {
		idx := -1
		for i := range schools {
			if schools[i].ID == s.ID {
				idx = i
			}
		}
		assert.Greater(t, idx, prev)
		prev = idx
	}
}

func TestSpecialties(t *testing.T) {
	got := Specialties(sampleSchools())
	assert.Equal(t, []string{
		"Arts",
		"Computer Science",
		"Nursing",
		"Science",
		"الكهرباء",
		"الميكانيكا",
	}, got)
}

func TestSchoolNames(t *testing.T) {
	schools := append(sampleSchools(), entity.School{ID: "S006"})
	assert.Equal(t, []string{
		"Delta Tech",
		"Example School",
		"مدرسة الكهرباء",
		"مدرسة النيل",
	}, SchoolNames(schools))
}

func TestDerivedListsOnEmptyInput(t *testing.T) {
	assert.Empty(t, Specialties(nil))
	assert.Empty(t, SchoolNames(nil))
	assert.Empty(t, Filter(nil, entity.FilterCriteria{}, nil))
}
