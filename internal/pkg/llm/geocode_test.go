package llm

import (
	"errors"
	"testing"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLng float64
		wantErr bool
	}{
		{"标准格式", "28.613900,77.209000", 28.6139, 77.209, false},
		{"带空白", "  19.0760 , 72.8777 ", 19.076, 72.8777, false},
		{"模型回答 unknown", "unknown", 0, 0, true},
		{"缺少经度", "28.6139", 0, 0, true},
		{"多余字段", "28.6,77.2,0", 0, 0, true},
		{"纬度越界", "91.0,77.2", 0, 0, true},
		{"经度越界", "28.6,181.0", 0, 0, true},
		{"非数字", "lat,lng", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, err := parseLatLng(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrGeocodeFailed) {
					t.Fatalf("期望 ErrGeocodeFailed, 实际 %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("解析失败: %v", err)
			}
			if lat != tt.wantLat || lng != tt.wantLng {
				t.Errorf("解析结果 (%f, %f), 期望 (%f, %f)", lat, lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}
