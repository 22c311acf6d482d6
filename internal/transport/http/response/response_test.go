package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorUsesDefaultMessage(t *testing.T) {
	r := Error(CodeServiceUnavailable, "")
	assert.Equal(t, "Service Unavailable", r.Msg)

	r = Error(CodeNotFound, "User not found")
	assert.Equal(t, "User not found", r.Msg)
}

func TestDataNeverNull(t *testing.T) {
	b, err := json.Marshal(OK(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":0,"msg":"OK","data":{}}`, string(b))
}
