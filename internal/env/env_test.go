package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("EDU_TEST_ADDR", ":9090")
	assert.Equal(t, ":9090", GetString("EDU_TEST_ADDR", ":8080"))
	assert.Equal(t, ":8080", GetString("EDU_TEST_MISSING", ":8080"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("EDU_TEST_INT", "42")
	t.Setenv("EDU_TEST_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetInt("EDU_TEST_INT", 1))
	assert.Equal(t, 1, GetInt("EDU_TEST_BAD_INT", 1))
	assert.Equal(t, 1, GetInt("EDU_TEST_MISSING_INT", 1))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("EDU_TEST_DURATION", "90s")
	t.Setenv("EDU_TEST_BAD_DURATION", "soon")

	assert.Equal(t, 90*time.Second, GetDuration("EDU_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("EDU_TEST_BAD_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("EDU_TEST_MISSING_DURATION", time.Minute))
}

func TestGetList(t *testing.T) {
	t.Setenv("EDU_TEST_LIST", " http://a.test, ,http://b.test ")
	t.Setenv("EDU_TEST_EMPTY_LIST", " , ")

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetList("EDU_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, GetList("EDU_TEST_EMPTY_LIST", []string{"x"}))
	assert.Equal(t, []string{"x"}, GetList("EDU_TEST_MISSING_LIST", []string{"x"}))
}
