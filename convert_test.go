package fintrack

import (
	"errors"
	"testing"
)

func TestConvert(t *testing.T) {
	rates := Rates{
		"USD": d("1"),
		"EUR": d("0.9"),
		"JPY": d("150"),
	}

	testCases := []struct {
		name   string
		amount string
		from   string
		to     string
		want   string
	}{
		{name: "base to target", amount: "100", from: "USD", to: "EUR", want: "90"},
		{name: "target to base", amount: "90", from: "EUR", to: "USD", want: "100"},
		{name: "cross rate", amount: "9", from: "EUR", to: "JPY", want: "1500"},
		{name: "identity", amount: "42", from: "JPY", to: "JPY", want: "42"},
		{name: "lowercase codes", amount: "100", from: "usd", to: "eur", want: "90"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(d(tc.amount), tc.from, tc.to, rates)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !got.Equal(d(tc.want)) {
				t.Errorf("Convert(%s, %s, %s) = %s, want %s", tc.amount, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	rates := Rates{"USD": d("1")}

	testCases := []struct {
		name  string
		from  string
		to    string
		rates Rates
	}{
		{name: "no rates", from: "USD", to: "EUR", rates: nil},
		{name: "unknown source", from: "XXX", to: "USD", rates: rates},
		{name: "unknown target", from: "USD", to: "XXX", rates: rates},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(d("1"), tc.from, tc.to, tc.rates)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Convert() error = %v, want a *ValidationError", err)
			}
		})
	}
}
