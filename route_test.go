package router

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	flag := FlagValue()
	assert.True(t, flag.IsFlag())
	assert.Equal(t, "true", flag.String())

	s := StringValue("true")
	assert.False(t, s.IsFlag())
	assert.Equal(t, "true", s.String())
	assert.NotEqual(t, flag, s)
}

func TestValueMarshalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Value{
		"a": StringValue("x\"y"),
		"b": FlagValue(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x\"y","b":true}`, string(b))
}

func TestNewRequestCopiesInput(t *testing.T) {
	params := map[string]string{"id": "1"}
	query := map[string]Value{"a": StringValue("1")}

	req := NewRequest("/movies/1/", params, query)

	params["id"] = "2"
	query["a"] = StringValue("2")

	id, _ := req.Param("id")
	assert.Equal(t, "1", id)

	a, _ := req.QueryValue("a")
	assert.Equal(t, "1", a.String())

	assert.Equal(t, "/movies/1/", req.Path())
	assert.Equal(t, "", req.QueryString())
}

func TestNewRequestNilMaps(t *testing.T) {
	req := NewRequest("/", nil, nil)

	assert.NotNil(t, req.Params())
	assert.NotNil(t, req.Query())
	assert.Empty(t, req.Query())
}

func TestRouteWithoutRequest(t *testing.T) {
	route := newRoute(Descriptor{Pattern: "/search/", View: "search"})

	assert.Nil(t, route.Request())
	assert.Nil(t, route.Metadata())

	_, ok := route.Meta("missing")
	assert.False(t, ok)
}
