package session

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Prompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("10\r\nid1\nlast"), &out)

	got, err := c.Prompt(PromptLength)
	require.NoError(t, err)
	assert.Equal(t, "10", got)

	got, err = c.Prompt(PromptID)
	require.NoError(t, err)
	assert.Equal(t, "id1", got)

	got, err = c.Prompt(PromptDescription)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Prompt(PromptLabel)
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, PromptLength+PromptID+PromptDescription+PromptLabel, out.String())
}

func TestConsole_Println(t *testing.T) {
	var out bytes.Buffer
	NewConsole(strings.NewReader(""), &out).Println(MsgFarewell)
	assert.Equal(t, MsgFarewell+"\n", out.String())
}
