package util

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{"同一点距离为零", 28.6139, 77.2090, 28.6139, 77.2090, 0, 0.001},
		{"德里到孟买", 28.6139, 77.2090, 19.0760, 72.8777, 1153, 10},
		{"赤道上经度相差一度", 0, 0, 0, 1, 111.19, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm = %f, 期望 %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}
