package logger

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		spec string
		name string
		want bool
	}{
		{"", "cli:resolver", false},
		{"*", "cli:resolver", true},
		{"cli:resolver", "cli:resolver", true},
		{"cli:resolver", "cli:help", false},
		{"cli:*", "cli:help", true},
		{"cli:*", "figlet:figlet", false},
		{"figlet:*,cli:*", "cli:help", true},
		{" cli:help , figlet:* ", "figlet:figlet", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.name, func(t *testing.T) {
			if got := matches(tt.spec, tt.name); got != tt.want {
				t.Errorf("matches(%q, %q) = %v, want %v", tt.spec, tt.name, got, tt.want)
			}
		})
	}
}

func TestNewDisabledByDefault(t *testing.T) {
	t.Setenv("DEBUG", "")
	if New("cli:resolver").Enabled() {
		t.Error("logger should be disabled when DEBUG is empty")
	}
}

func TestNewEnabledByPattern(t *testing.T) {
	t.Setenv("DEBUG", "cli:*")
	if !New("cli:resolver").Enabled() {
		t.Error("logger should be enabled by a matching DEBUG pattern")
	}
}
