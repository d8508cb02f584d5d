package xprefixset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	s := mustSet("192.0.2.0/24", "10.0.0.0/8")
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["10.0.0.0/8","192.0.2.0/24"]`, string(data))

	var got Set
	require.NoError(t, json.Unmarshal([]byte(`["192.0.2.128/25","192.0.2.0/25","2001:db8::/32"]`), &got))
	assertSet(t, got, "192.0.2.0/24", "2001:db8::/32")

	data, err = json.Marshal(Set{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestJSON_Errors(t *testing.T) {
	var got Set
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
	assert.ErrorContains(t, json.Unmarshal([]byte(`["10.0.0.0/8","bogus"]`), &got), "element [1]")
}

func TestJSON_Embedded(t *testing.T) {
	type policy struct {
		Allow Set `json:"allow"`
	}
	var p policy
	require.NoError(t, json.Unmarshal([]byte(`{"allow":["10.0.0.0/9","10.128.0.0/9"]}`), &p))
	assertSet(t, p.Allow, "10.0.0.0/8")
}
