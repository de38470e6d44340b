package ginutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestQueryInt(t *testing.T) {
	c := newContext(t, "/x?limit=5&bad=abc")
	assert.Equal(t, 5, QueryInt(c, "limit", 10))
	assert.Equal(t, 10, QueryInt(c, "bad", 10))
	assert.Equal(t, 10, QueryInt(c, "missing", 10))
}

func TestQueryPage(t *testing.T) {
	assert.Equal(t, 3, QueryPage(newContext(t, "/x?page=3")))
	assert.Equal(t, 1, QueryPage(newContext(t, "/x?page=0")))
	assert.Equal(t, 1, QueryPage(newContext(t, "/x?page=-2")))
	assert.Equal(t, 1, QueryPage(newContext(t, "/x?page=two")))
	assert.Equal(t, 1, QueryPage(newContext(t, "/x")))
}

func TestQueryOptional(t *testing.T) {
	c := newContext(t, "/x?title=&owner=alice")

	title := QueryOptional(c, "title")
	require.NotNil(t, title)
	assert.Equal(t, "", *title)

	owner := QueryOptional(c, "owner")
	require.NotNil(t, owner)
	assert.Equal(t, "alice", *owner)

	assert.Nil(t, QueryOptional(c, "missing"))
}

func TestParamInt(t *testing.T) {
	c := newContext(t, "/bulletins/12")
	c.Params = gin.Params{{Key: "id", Value: "12"}, {Key: "bad", Value: "x1"}}

	id, err := ParamInt(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = ParamInt(c, "bad")
	assert.Error(t, err)
}
