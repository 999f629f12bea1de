package entry

import "testing"

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		n       int
		want    string
	}{
		{
			name:    "fewer lines than budget",
			trimmed: "Foo:Bar()",
			n:       3,
			want:    "Foo:Bar()",
		},
		{
			name:    "exact budget",
			trimmed: "a\nb\nc",
			n:       3,
			want:    "abc",
		},
		{
			name:    "truncated to budget",
			trimmed: "a\nb\nc\nd",
			n:       2,
			want:    "ab",
		},
		{
			name:    "lines are whitespace trimmed",
			trimmed: "  Foo:Bar()  \n\t Foo:Baz()\n",
			n:       3,
			want:    "Foo:Bar()Foo:Baz()",
		},
		{
			name:    "empty callstack",
			trimmed: "",
			n:       3,
			want:    "",
		},
		{
			name:    "trailing newline not an extra line",
			trimmed: "a\n",
			n:       3,
			want:    "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{TrimmedCallstack: tt.trimmed}
			if got := e.Summary(tt.n); got != tt.want {
				t.Errorf("Summary(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestNewRecord(t *testing.T) {
	e := Entry{
		Severity:         SeverityError,
		Message:          "Something broke",
		Callstack:        "Something broke\nUnityEngine.Debug:LogError(Object)\nFoo:Bar()\nFoo:Baz()",
		TrimmedCallstack: "Foo:Bar()\nFoo:Baz()",
	}

	rec := NewRecord(e, 1)
	if rec.Type != "Error" {
		t.Errorf("Type = %q, want %q", rec.Type, "Error")
	}
	if rec.Message != "Something broke" {
		t.Errorf("Message = %q, want %q", rec.Message, "Something broke")
	}
	if rec.Short != "Foo:Bar()" {
		t.Errorf("Short = %q, want %q", rec.Short, "Foo:Bar()")
	}
}

func TestRecordIsZero(t *testing.T) {
	if !(Record{}).IsZero() {
		t.Error("empty Record should be zero")
	}
	if (Record{Type: "Log"}).IsZero() {
		t.Error("Record with a type should not be zero")
	}
	if (Record{Short: "x"}).IsZero() {
		t.Error("Record with a short should not be zero")
	}
}
