package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `validate:"notblank"`
	Price float64 `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		input  sample
		fields []string
	}{
		{name: "Valid", input: sample{Name: "Concert", Price: 10}},
		{name: "Blank name", input: sample{Name: "   ", Price: 10}, fields: []string{"Name"}},
		{name: "Zero price", input: sample{Name: "Concert"}, fields: []string{"Price"}},
		{name: "Both invalid", input: sample{Name: "\t", Price: -1}, fields: []string{"Name", "Price"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(tc.input)
			if tc.fields == nil {
				require.NoError(t, err)
				return
			}

			var validationErr *Error
			require.True(t, errors.As(err, &validationErr))
			assert.ElementsMatch(t, tc.fields, validationErr.Fields)
			for _, f := range tc.fields {
				assert.True(t, validationErr.Has(f))
			}
			assert.Contains(t, err.Error(), "invalid input")
		})
	}
}

func TestNewRegistersNotBlank(t *testing.T) {
	t.Parallel()

	v := New()

	assert.Error(t, v.Var("   ", "notblank"))
	assert.NoError(t, v.Var("x", "notblank"))
}
