package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHouseArea(t *testing.T) {
	cases := []struct {
		area float64
		want string
	}{
		{area: 0.1, want: HouseSmall},
		{area: 30, want: HouseSmall},
		{area: 59.99, want: HouseSmall},
		{area: 60, want: HouseMedium},
		{area: 90, want: HouseMedium},
		{area: 119.99, want: HouseMedium},
		{area: 120, want: HouseLarge},
		{area: 500, want: HouseLarge},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyHouseArea(tc.area), "area %v", tc.area)
	}
}
