package entities

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from ServiceStatus
		to   ServiceStatus
		want bool
	}{
		{"created to created", StatusRequestCreated, StatusRequestCreated, true},
		{"created to in progress", StatusRequestCreated, StatusServiceInProgress, true},
		{"created to completed", StatusRequestCreated, StatusServiceCompleted, false},
		{"in progress to created", StatusServiceInProgress, StatusRequestCreated, false},
		{"in progress to in progress", StatusServiceInProgress, StatusServiceInProgress, true},
		{"in progress to completed", StatusServiceInProgress, StatusServiceCompleted, true},
		{"completed to created", StatusServiceCompleted, StatusRequestCreated, false},
		{"completed to in progress", StatusServiceCompleted, StatusServiceInProgress, false},
		{"completed to completed", StatusServiceCompleted, StatusServiceCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestAllowedNext(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		next := AllowedNext(StatusRequestCreated)
		if len(next) != 1 || next[0] != StatusServiceInProgress {
			t.Fatalf("expected [ServiceInProgress], got %v", next)
		}
	})

	t.Run("in progress", func(t *testing.T) {
		next := AllowedNext(StatusServiceInProgress)
		if len(next) != 1 || next[0] != StatusServiceCompleted {
			t.Fatalf("expected [ServiceCompleted], got %v", next)
		}
	})

	t.Run("completed is terminal", func(t *testing.T) {
		next := AllowedNext(StatusServiceCompleted)
		if len(next) != 0 {
			t.Fatalf("expected no next statuses, got %v", next)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		next := AllowedNext(ServiceStatus("Bogus"))
		if len(next) != 0 {
			t.Fatalf("expected no next statuses, got %v", next)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		next := AllowedNext(StatusRequestCreated)
		next[0] = StatusServiceCompleted
		if again := AllowedNext(StatusRequestCreated); again[0] != StatusServiceInProgress {
			t.Fatalf("mutating the returned slice leaked into the table: %v", again)
		}
	})
}
