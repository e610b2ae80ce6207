package domain_test

import (
	"testing"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		name      string
		issueDate time.Time
		sequence  int
		want      string
	}{
		{
			name:      "first invoice of 2025",
			issueDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			sequence:  1,
			want:      "INV25#001",
		},
		{
			name:      "double digit sequence keeps padding",
			issueDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			sequence:  42,
			want:      "INV25#042",
		},
		{
			name:      "sequence beyond padding grows in width",
			issueDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			sequence:  1234,
			want:      "INV26#1234",
		},
		{
			name:      "year suffix wraps on century",
			issueDate: time.Date(2100, 6, 1, 0, 0, 0, 0, time.UTC),
			sequence:  7,
			want:      "INV00#007",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatInvoiceNumber(tt.issueDate, tt.sequence))
		})
	}
}

func TestParseInvoiceNumber(t *testing.T) {
	tests := []struct {
		name           string
		number         string
		wantYearSuffix int
		wantSequence   int
		wantErr        bool
	}{
		{name: "canonical", number: "INV25#001", wantYearSuffix: 25, wantSequence: 1},
		{name: "wide sequence", number: "INV25#1234", wantYearSuffix: 25, wantSequence: 1234},
		{name: "missing prefix", number: "25#001", wantErr: true},
		{name: "missing separator", number: "INV25001", wantErr: true},
		{name: "single digit year", number: "INV5#001", wantErr: true},
		{name: "zero sequence", number: "INV25#000", wantErr: true},
		{name: "empty", number: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yearSuffix, sequence, err := domain.ParseInvoiceNumber(tt.number)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantYearSuffix, yearSuffix)
			assert.Equal(t, tt.wantSequence, sequence)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	issueDate := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	number := domain.FormatInvoiceNumber(issueDate, 99)
	yearSuffix, sequence, err := domain.ParseInvoiceNumber(number)
	assert.NoError(t, err)
	assert.Equal(t, 25, yearSuffix)
	assert.Equal(t, 99, sequence)
}
