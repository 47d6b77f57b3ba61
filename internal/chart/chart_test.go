package chart

import "testing"

func TestNewPairsLabelsWithValues(t *testing.T) {
	s := New("Sales", KindLine, []string{"Jan", "Feb", "Mar"}, []float64{4000, 3000, 5000})

	if len(s.Points) != 3 {
		t.Fatalf("points: got %d, want 3", len(s.Points))
	}
	if s.Points[1].Label != "Feb" || s.Points[1].Value != 3000 {
		t.Fatalf("second point: %+v", s.Points[1])
	}
	if got := s.Total(); got != 12000 {
		t.Fatalf("total: got %v, want 12000", got)
	}
}

func TestNewTruncatesToShorterSlice(t *testing.T) {
	s := New("Devices", KindPie, []string{"Desktop", "Mobile", "Tablet"}, []float64{48, 45})
	if len(s.Points) != 2 {
		t.Fatalf("points: got %d, want 2", len(s.Points))
	}
}
