package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

type message struct {
	Email string `json:"email"`
	Flag  *bool  `json:"flag,omitempty"`
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	c := JSON{}
	flag := true

	data, err := c.Marshal(&message{Email: "jane@example.com", Flag: &flag})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"jane@example.com","flag":true}`, string(data))

	var out message
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, "jane@example.com", out.Email)
	require.NotNil(t, out.Flag)
	assert.True(t, *out.Flag)
}

func TestJSON_EmptyPayload(t *testing.T) {
	t.Parallel()

	var out message
	require.NoError(t, JSON{}.Unmarshal(nil, &out))
	assert.Empty(t, out.Email)
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	_, err := JSON{}.Marshal(make(chan int))
	assert.ErrorContains(t, err, "failed to marshal")

	var out message
	assert.ErrorContains(t, JSON{}.Unmarshal([]byte("{"), &out), "failed to unmarshal")
}

func TestJSON_Registered(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Name, JSON{}.Name())
	assert.NotNil(t, encoding.GetCodec(Name))
}
