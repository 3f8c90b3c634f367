package commit

import "testing"

const verboseTrailer = "# ------------------------ >8 ------------------------\n"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "feat: add thing", "feat: add thing"},
		{"comment_line", "# Please enter the commit message\nfeat: add thing", "feat: add thing"},
		{"comment_lines_interleaved", "feat: add thing\n# comment\nbody\n# another\n", "feat: add thing\nbody\n"},
		{"comment_crlf", "# comment\r\nfeat: add thing", "feat: add thing"},
		{"comment_without_terminator", "feat: add thing\n# trailing", "feat: add thing\n"},
		{"verbose_trailer", "feat: add thing\n" + verboseTrailer + "diff --git a/f b/f\n+line\n", "feat: add thing\n"},
		{"verbose_trailer_with_comments", "feat: add thing\n# comment\n" + verboseTrailer + "diff\n", "feat: add thing\n"},
		{"trailer_must_start_line", "feat: add thing x " + verboseTrailer, "feat: add thing x " + verboseTrailer},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"feat: add thing",
		"# comment\nfeat: add thing\n\nbody\n",
		"feat: add thing\n" + verboseTrailer + "diff --git a/f b/f\n",
		"🔖 Release 1.2.3\n\nnotes\n# comment\n",
	}
	for _, input := range inputs {
		once := Clean(input)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestClean_NoOpWithoutGitContent(t *testing.T) {
	inputs := []string{
		"feat: add thing",
		"feat: add thing\n\nbody line one\nbody line two\n",
		"Merge branch 'main' into feature\n",
	}
	for _, input := range inputs {
		if got := Clean(input); got != input {
			t.Errorf("Clean(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestHasAutosquashPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"fixup! feat: add thing", true},
		{"squash! feat: add thing", true},
		{"amend! feat: add thing", true},
		{"fixup! broken message\nwith body", true},
		{"# comment\nfixup! feat: add thing", true},
		{"Fixup! feat: add thing", false},
		{"fixup!feat: add thing", false},
		{"feat: add fixup! handling", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasAutosquashPrefix(tt.input); got != tt.expected {
			t.Errorf("HasAutosquashPrefix(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsMerge(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Merge branch 'feature' into main", true},
		{"Merge pull request #42 from fork/feature", true},
		{"Merge remote-tracking branch 'origin/main'", true},
		{"Merge tag 'v1.0.0'", true},
		{"merge branch 'feature'", true},
		{"# comment\nMerge branch 'feature'", true},
		{"Merged branch 'feature'", false},
		{"feat: merge sorted lists", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsMerge(tt.input); got != tt.expected {
			t.Errorf("IsMerge(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
