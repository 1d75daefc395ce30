package todo

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Status
	}{
		{"all", StatusAll},
		{"completed", StatusCompleted},
		{"active", StatusActive},
		{"", StatusAll},
		{"done", StatusAll},
		{"Active", StatusAll},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := ParseStatus(tt.raw); got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatus_Matches(t *testing.T) {
	t.Parallel()

	done := &Todo{Title: "finished task", Completed: true}
	open := &Todo{Title: "open task", Completed: false}

	tests := []struct {
		status   Status
		wantDone bool
		wantOpen bool
	}{
		{StatusAll, true, true},
		{StatusCompleted, true, false},
		{StatusActive, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.Matches(done); got != tt.wantDone {
				t.Errorf("Matches(completed) = %v, want %v", got, tt.wantDone)
			}
			if got := tt.status.Matches(open); got != tt.wantOpen {
				t.Errorf("Matches(active) = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestStatus_Completed(t *testing.T) {
	t.Parallel()

	if StatusAll.Completed() != nil {
		t.Error("StatusAll.Completed() should be nil")
	}
	if c := StatusCompleted.Completed(); c == nil || !*c {
		t.Errorf("StatusCompleted.Completed() = %v, want true", c)
	}
	if c := StatusActive.Completed(); c == nil || *c {
		t.Errorf("StatusActive.Completed() = %v, want false", c)
	}
}
