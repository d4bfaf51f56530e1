package recipe

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(recipes []Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	list := []Recipe{
		{ID: 1, Name: "Chocolate Cake"},
		{ID: 2, Name: "Vanilla Pudding"},
		{ID: 3, Name: "Hot CHOCOLATE"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search returns all", "", []string{"Chocolate Cake", "Vanilla Pudding", "Hot CHOCOLATE"}},
		{"case-insensitive substring", "choco", []string{"Chocolate Cake", "Hot CHOCOLATE"}},
		{"upper-case needle", "VANILLA", []string{"Vanilla Pudding"}},
		{"inner substring", "dding", []string{"Vanilla Pudding"}},
		{"no match", "pizza", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(list, tt.search))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tt.search, diff)
			}
		})
	}
}

func TestFilter_KeepsOrderOfMatches(t *testing.T) {
	list := []Recipe{{ID: 1, Name: "Chocolate Cake"}, {ID: 2, Name: "Vanilla Pudding"}}

	got := Filter(list, "choco")
	if len(got) != 1 || got[0].Name != "Chocolate Cake" {
		t.Errorf("Filter(choco) = %v, want only Chocolate Cake", names(got))
	}
	if len(Filter(list, "")) != 2 {
		t.Error("empty search should return both recipes")
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{"", SortNone, false},
		{"asc", SortAsc, false},
		{"DESC", SortDesc, false},
		{" asc ", SortAsc, false},
		{"sideways", SortNone, true},
	}
	for _, tt := range tests {
		got, err := ParseSortOrder(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortOrder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSortOrderNext(t *testing.T) {
	o := SortNone
	want := []SortOrder{SortAsc, SortDesc, SortNone}
	for i, w := range want {
		o = o.Next()
		if o != w {
			t.Errorf("step %d: Next() = %q, want %q", i, o, w)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := Recipe{ID: 1, Name: "Soup", Tags: []string{"dinner"}, Ingredients: []string{"water"}}
	c := r.Clone()
	c.Tags[0] = "lunch"
	c.Ingredients[0] = "stock"

	if r.Tags[0] != "dinner" || r.Ingredients[0] != "water" {
		t.Error("Clone should not share slices with the original")
	}
}

func TestFind(t *testing.T) {
	list := []Recipe{{ID: 4, Name: "Pie"}, {ID: 9, Name: "Tart"}}
	got, ok := Find(list, 9)
	if !ok || got.Name != "Tart" {
		t.Errorf("Find(9) = %v, %v", got, ok)
	}
	if _, ok := Find(list, 1); ok {
		t.Error("Find(1) should not find anything")
	}
}

func TestRecipeDecode(t *testing.T) {
	data := `{"id":7,"name":"Pad Thai","ingredients":["noodles"],"instructions":["boil"],
		"difficulty":"Medium","tags":["thai"],"image":"https://img/7.jpg","rating":4.6,"cuisine":"Thai"}`

	var r Recipe
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.ID != 7 || r.Difficulty != DifficultyMedium || r.Rating != 4.6 {
		t.Errorf("decoded %+v", r)
	}
	if !r.Difficulty.IsValid() {
		t.Error("Medium should be a valid difficulty")
	}
	if Difficulty("Impossible").IsValid() {
		t.Error("unknown difficulty should not be valid")
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(Recipe{
		Name:         "Pancakes",
		Difficulty:   DifficultyEasy,
		Rating:       4.5,
		Tags:         []string{"breakfast"},
		Ingredients:  []string{"flour", "milk"},
		Instructions: []string{"mix", "fry"},
	})

	for _, want := range []string{"# Pancakes", "4.5", "Easy", "`breakfast`", "- flour", "2. fry"} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}
