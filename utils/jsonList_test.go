package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  datatypes.JSON
		want []string
	}{
		{"nil value", nil, []string{}},
		{"empty value", datatypes.JSON(``), []string{}},
		{"json null", datatypes.JSON(`null`), []string{}},
		{"empty array", datatypes.JSON(`[]`), []string{}},
		{"string array", datatypes.JSON(`["a","b","c"]`), []string{"a", "b", "c"}},
		{"not an array", datatypes.JSON(`"just a string"`), []string{}},
		{"object", datatypes.JSON(`{"k":"v"}`), []string{}},
		{"malformed", datatypes.JSON(`[unclosed`), []string{}},
		{"mixed types", datatypes.JSON(`["a",1,true,null]`), []string{"a", "1", "true"}},
		{"nested object element", datatypes.JSON(`[{"step":"one"}]`), []string{`{"step":"one"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringList(tt.raw))
		})
	}
}

func TestJSONList(t *testing.T) {
	assert.Equal(t, datatypes.JSON(`["a","b"]`), JSONList([]string{"a", "b"}))
	assert.Equal(t, datatypes.JSON(`[]`), JSONList(nil))
	assert.Equal(t, datatypes.JSON(`[]`), JSONList([]string{}))
}

func TestStringListRoundTrip(t *testing.T) {
	list := []string{"declutter", "rhythm", "filter adult topics"}
	assert.Equal(t, list, StringList(JSONList(list)))
}
