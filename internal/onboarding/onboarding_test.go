package onboarding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Name
		want    Name
		wantErr error
	}{
		{
			name: "full name",
			in:   Name{First: " Leela ", Middle: "", Last: "Delphine"},
			want: Name{First: "Leela", Last: "Delphine"},
		},
		{
			name: "middle name collapses whitespace",
			in:   Name{First: "Ana", Middle: " Maria   Jose ", Last: "Lopez"},
			want: Name{First: "Ana", Middle: "Maria Jose", Last: "Lopez"},
		},
		{name: "missing first", in: Name{Last: "Lopez"}, wantErr: ErrFirstNameRequired},
		{name: "blank last", in: Name{First: "Ana", Last: "   "}, wantErr: ErrLastNameRequired},
		{name: "too long", in: Name{First: "Ana", Last: strings.Repeat("x", 51)}, wantErr: ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName_Full(t *testing.T) {
	assert.Equal(t, "Ana Maria Lopez", Name{First: "Ana", Middle: "Maria", Last: "Lopez"}.Full())
	assert.Equal(t, "Ana Lopez", Name{First: "Ana", Last: "Lopez"}.Full())
	assert.Equal(t, "Ana Lopez", Name{First: "Ana", Middle: "Maria", Last: "Lopez"}.Display())
}
