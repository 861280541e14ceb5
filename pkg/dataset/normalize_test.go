package dataset

import "testing"

func TestCleanCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "already clean",
			code: "class apache {\n  ensure => present,\n}",
			want: "class apache {\n  ensure => present,\n}",
		},
		{
			name: "collapses blank line runs",
			code: "class a {\n\n\n\n  x => 1,\n}",
			want: "class a {\n\n  x => 1,\n}",
		},
		{
			name: "reindents four space indentation",
			code: "class a {\n    ensure => present,\n}",
			want: "class a {\n    ensure => present,\n}",
		},
		{
			name: "strips tab indentation",
			code: "class a {\n\tensure => present,\n}",
			want: "class a {\nensure => present,\n}",
		},
		{
			name: "odd indent rounds down",
			code: "class a {\n   x => 1,\n}",
			want: "class a {\n  x => 1,\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCode(tt.code); got != tt.want {
				t.Errorf("CleanCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanCodeIdempotent(t *testing.T) {
	code := "class nginx {\n\n\n    package { 'nginx':\n        ensure => installed,\n    }\n}"
	once := CleanCode(code)
	twice := CleanCode(once)
	if once != twice {
		t.Errorf("CleanCode not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	a := "class  apache {\n  ensure => present,\n}"
	b := "class apache { ensure => present, }"
	if CollapseWhitespace(a) != CollapseWhitespace(b) {
		t.Errorf("whitespace variants should collapse equal: %q vs %q",
			CollapseWhitespace(a), CollapseWhitespace(b))
	}
}

func TestRepairDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		code        string
		want        string
	}{
		{
			name:        "good description kept",
			description: "Configures the Apache web server",
			code:        "class apache {}",
			want:        "Configures the Apache web server",
		},
		{
			name:        "placeholder Classes replaced",
			description: "Classes",
			code:        "class apache {}",
			want:        "Puppet class apache",
		},
		{
			name:        "placeholder Puppet replaced",
			description: "Puppet",
			code:        "define create_user($uid) {}",
			want:        "Puppet defined type create_user",
		},
		{
			name:        "empty description replaced",
			description: "",
			code:        "node 'web.example.com' {}",
			want:        "Puppet node definition",
		},
		{
			name:        "short description replaced",
			description: "Code",
			code:        "include nginx",
			want:        "Including Puppet classes",
		},
		{
			name:        "no recognizable declaration",
			description: "",
			code:        "$x = 1",
			want:        "Puppet configuration code",
		},
		{
			name:        "class beats define",
			description: "",
			code:        "class wrapper {}\ndefine inner() {}",
			want:        "Puppet class wrapper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairDescription(tt.description, tt.code); got != tt.want {
				t.Errorf("RepairDescription(%q, ...) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}
