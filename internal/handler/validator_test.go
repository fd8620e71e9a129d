package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pollTestStruct struct {
	Choice string `validate:"required,option"`
	Date   string `validate:"omitempty,date"`
	Name   string `validate:"required,max=30,excludesall=\x00\n\r\t"`
}

func TestValidator_OptionValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		choice  string
		wantErr bool
	}{
		{"A", false},
		{"B", false},
		{"a", false},
		{"yes", false},
		{"No", false},
		{"C", true},
		{"maybe", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			err := v.ValidateStruct(pollTestStruct{Choice: tt.choice, Name: "ok"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_DateValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		date    string
		wantErr bool
	}{
		{"", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-2-1", true},
		{"yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			err := v.ValidateStruct(pollTestStruct{Choice: "A", Date: tt.date, Name: "ok"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("Field messages", func(t *testing.T) {
		err := v.ValidateStruct(pollTestStruct{Choice: "Z", Date: "bad", Name: "tab\there" + strings.Repeat("x", 30)})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, ErrMsgFieldOption, fields["choice"])
		assert.Equal(t, ErrMsgFieldDate, fields["date"])
		assert.Equal(t, "Must be at most 30 characters", fields["name"])
	})

	t.Run("Control characters", func(t *testing.T) {
		err := v.ValidateStruct(pollTestStruct{Choice: "A", Name: "tab\there"})
		require.Error(t, err)
		assert.Equal(t, ErrMsgFieldInvalidChar, FormatValidationError(err)["name"])
	})

	t.Run("Non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, ErrMsgRequestFormat, fields["error"])
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
