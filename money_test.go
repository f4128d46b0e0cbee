package fintrack

import "testing"

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		amount   string
		currency string
		want     string
	}{
		{amount: "12.34", currency: "USD", want: "$12.34"},
		{amount: "0", currency: "USD", want: "$0.00"},
		{amount: "-3.5", currency: "USD", want: "-$3.50"},
		{amount: "7.77", currency: "XXX", want: "7.77 XXX"},
	}

	for _, tc := range testCases {
		if got := FormatAmount(d(tc.amount), tc.currency); got != tc.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
