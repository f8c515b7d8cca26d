package generator

import "testing"

func TestParseSuggestions_PlainArray(t *testing.T) {
	content := `[
		{"title": "Idea One", "description": "First idea", "tech_stack": ["Go"]},
		{"title": "Idea Two", "description": "Second idea", "tech_stack": ["React"]}
	]`

	suggestions, err := parseSuggestions(content)
	if err != nil {
		t.Fatalf("parseSuggestions() error = %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	if suggestions[0].Title != "Idea One" {
		t.Errorf("Title = %q, want %q", suggestions[0].Title, "Idea One")
	}
}

func TestParseSuggestions_MarkdownFenced(t *testing.T) {
	content := "Here are your ideas:\n```json\n" +
		`[{"title": "A", "description": "a"}, {"title": "B", "description": "b"}, {"title": "C", "description": "c"}]` +
		"\n```\nEnjoy!"

	suggestions, err := parseSuggestions(content)
	if err != nil {
		t.Fatalf("parseSuggestions() error = %v", err)
	}
	if len(suggestions) != 3 {
		t.Errorf("got %d suggestions, want 3", len(suggestions))
	}
}

func TestParseSuggestions_Failures(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no array", "I could not come up with anything."},
		{"malformed json", `[{"title": }]`},
		{"too few", `[{"title": "Only One", "description": "x"}]`},
		{"too many", `[{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseSuggestions(tc.content); err == nil {
				t.Errorf("parseSuggestions(%q) should fail", tc.content)
			}
		})
	}
}
