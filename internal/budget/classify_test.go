package budget

import "testing"

func TestIsPresentationFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"app/ui/form.py", true},
		{"app/UI/form.py", true},
		{"MainWindow.py", true},
		{"screens/login_screen.py", true},
		{"LoginScreen.kv", true},
		{"app/templates/base.html", true},
		{"app/static/css/main.css", true},
		{"layout.xml", true},
		{"dialog.ui", true},
		// "ui" hides inside "requirements"; the keyword check is a plain
		// substring match
		{"requirements.txt", true},
		{"main.py", false},
		{"config/settings.py", false},
		{"README.md", false},
		{"Dockerfile", false},
		{"app/routes.py", false},
		// extension match stays case-sensitive
		{"INDEX.HTML", false},
		{"theme.CSS", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsPresentationFile(tt.path); got != tt.expected {
				t.Errorf("IsPresentationFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMinimumsFor(t *testing.T) {
	presentation := MinimumsFor("app/templates/base.html")
	if presentation.Lines != 500 || presentation.Tokens != 2000 {
		t.Errorf("presentation minimums = %+v, want {500 2000}", presentation)
	}

	standard := MinimumsFor("main.py")
	if standard.Lines != 20 || standard.Tokens != 300 {
		t.Errorf("standard minimums = %+v, want {20 300}", standard)
	}
}
