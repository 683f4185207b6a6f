package pricing

import "testing"

func TestFloorSurcharge(t *testing.T) {
	cases := []struct {
		name        string
		floor       int
		hasElevator bool
		want        float64
	}{
		{"ground floor", 1, false, 0},
		{"unknown floor", 0, false, 0},
		{"second floor no elevator", 2, false, 50},
		{"fifth floor no elevator", 5, false, 200},
		{"fifth floor with elevator", 5, true, 0},
		{"tenth floor with elevator", 10, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FloorSurcharge(tc.floor, tc.hasElevator); got != tc.want {
				t.Fatalf("FloorSurcharge(%d, %v) = %v, want %v", tc.floor, tc.hasElevator, got, tc.want)
			}
		})
	}
}

func TestDistanceSurcharge_Breakpoints(t *testing.T) {
	cases := []struct {
		km   float64
		want float64
	}{
		{0, 0},
		{50, 0},
		{50.1, 150},
		{100, 150},
		{100.1, 300},
		{200, 300},
		{200.1, 450},
		{300, 450},
		{300.1, 600},
		{1000, 600},
	}
	for _, tc := range cases {
		if got := DistanceSurcharge(tc.km); got != tc.want {
			t.Errorf("DistanceSurcharge(%v) = %v, want %v", tc.km, got, tc.want)
		}
	}
}

func TestDistanceSurcharge_NonDecreasing(t *testing.T) {
	prev := DistanceSurcharge(0)
	for km := 1.0; km <= 500; km++ {
		cur := DistanceSurcharge(km)
		if cur < prev {
			t.Fatalf("surcharge decreased at %v km: %v < %v", km, cur, prev)
		}
		prev = cur
	}
}

func TestPackingSurcharge(t *testing.T) {
	if got := PackingSurcharge(20, false); got != 0 {
		t.Fatalf("not requested: got %v, want 0", got)
	}
	// 5 m³ * 15 = 75, below the minimum fee.
	if got := PackingSurcharge(5, true); got != 150 {
		t.Fatalf("minimum fee: got %v, want 150", got)
	}
	if got := PackingSurcharge(20, true); got != 300 {
		t.Fatalf("by volume: got %v, want 300", got)
	}
}

func TestBoxesPrice(t *testing.T) {
	if got := BoxesPrice(0); got != 0 {
		t.Fatalf("BoxesPrice(0) = %v, want 0", got)
	}
	if got := BoxesPrice(10); got != 25 {
		t.Fatalf("BoxesPrice(10) = %v, want 25", got)
	}
	if got := BoxesPrice(1000); got != 2500 {
		t.Fatalf("BoxesPrice(1000) = %v, want 2500", got)
	}
}

func TestClearancePrice(t *testing.T) {
	cases := []struct {
		volume float64
		want   float64
	}{
		{0, 0},
		{-3, 0},
		{5, 150},
		{10, 280},
		{15, 420},
		{20, 560},
		{24, 560 + 4*25},
		{40, 560 + 20*25},
	}
	for _, tc := range cases {
		if got := ClearancePrice(tc.volume); got != tc.want {
			t.Errorf("ClearancePrice(%v) = %v, want %v", tc.volume, got, tc.want)
		}
	}
}

func TestAvailableServices(t *testing.T) {
	services := AvailableServices()
	if len(services) != 12 {
		t.Fatalf("expected 12 catalog services, got %d", len(services))
	}
	seen := map[string]bool{}
	for _, s := range services {
		if s.ID == "" || s.Name == "" {
			t.Fatalf("catalog entry missing id or name: %+v", s)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate catalog id %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, id := range []string{"packing", "boxes", "cleaning", "clearance", "piano", "storage"} {
		if !seen[id] {
			t.Fatalf("catalog missing %q", id)
		}
	}
}
