package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantFee int64
		wantNet int64
	}{
		{"zero amount", 0, 0, 0},
		{"one cent rounds down", 1, 0, 1},
		{"ten cents rounds half up", 10, 1, 9},
		{"ten dollars", 1000, 50, 950},
		{"one hundred dollars", 10000, 500, 9500},
		{"odd amount rounds half up", 999, 50, 949},
		{"sub-cent fee rounds down", 9, 0, 9},
		{"large amount", 123456789, 6172839, 117283950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFee, gotNet := Split(tt.amount)
			assert.Equal(t, tt.wantFee, gotFee)
			assert.Equal(t, tt.wantNet, gotNet)
		})
	}
}

func TestSplit_FeePlusNetEqualsAmount(t *testing.T) {
	for amount := int64(0); amount <= 10000; amount++ {
		feeCents, netCents := Split(amount)
		if feeCents+netCents != amount {
			t.Fatalf("fee %d + net %d != amount %d", feeCents, netCents, amount)
		}
	}
}
