package main

import "testing"

func TestCheckYearRangeFlags(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		wantErr bool
	}{
		{"both set", 2010, 2020, false},
		{"single year", 2020, 2020, false},
		{"missing to", 2010, 0, true},
		{"missing from", 0, 2020, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkYearRangeFlags(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkYearRangeFlags(%d, %d) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}
