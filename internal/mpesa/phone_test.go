package mpesa

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0712345678", want: "254712345678"},
		{in: "254712345678", want: "254712345678"},
		{in: "712345678", want: "254712345678"},
		{in: "+254 712 345 678", want: "254712345678"},
		{in: "0110000000", want: "254110000000"},
		{in: "12345", wantErr: true},
		{in: "0712", wantErr: true},
		{in: "0812345678", wantErr: true},
		{in: "07123456789", wantErr: true},
		{in: "07123x5678", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("NormalizePhone(%q): expected ErrInvalidPhone, got %v", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
