package domain

import "testing"

func testRepos() []Repo {
	return []Repo{
		{Name: "blog", Description: "Personal writing"},
		{Name: "dotfiles", Description: "Shell configuration"},
		{Name: "portfolio", Description: ""},
		{Name: "Recipes", Description: "Cooking notes"},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{
			name:      "empty term returns full set",
			term:      "",
			wantNames: []string{"blog", "dotfiles", "portfolio", "Recipes"},
		},
		{
			name:      "matches name",
			term:      "blog",
			wantNames: []string{"blog"},
		},
		{
			name:      "matches description",
			term:      "shell",
			wantNames: []string{"dotfiles"},
		},
		{
			name:      "case-insensitive against name",
			term:      "RECIPES",
			wantNames: []string{"Recipes"},
		},
		{
			name:      "case-insensitive against description",
			term:      "CONFIG",
			wantNames: []string{"dotfiles"},
		},
		{
			name:      "substring match",
			term:      "folio",
			wantNames: []string{"portfolio"},
		},
		{
			name:      "no match yields empty set",
			term:      "kubernetes",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testRepos(), tt.term)

			if len(got) != len(tt.wantNames) {
				t.Fatalf("Filter(%q) returned %d repos, want %d", tt.term, len(got), len(tt.wantNames))
			}
			for i, r := range got {
				if r.Name != tt.wantNames[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.term, i, r.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestFilter_EmptyTermReturnsSameSlice(t *testing.T) {
	repos := testRepos()

	got := Filter(repos, "")

	if &got[0] != &repos[0] {
		t.Error("Filter with empty term should return the input set unchanged")
	}
}
