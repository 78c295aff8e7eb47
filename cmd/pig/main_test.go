package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emrzvv/gamerng/internal/model"
	"github.com/emrzvv/gamerng/internal/rng"
)

func TestPlayQuit(t *testing.T) {
	g := model.NewGame(rng.Seeded(1), 100)
	var out bytes.Buffer

	require.NoError(t, play(g, strings.NewReader("x\nq\n"), &out, time.Millisecond, 20))
	require.Contains(t, out.String(), "r = roll, p = pass, q = quit")
	require.Contains(t, out.String(), "bye")
	require.False(t, g.Over())
}

func TestPlayToTheEnd(t *testing.T) {
	g := model.NewGame(rng.Seeded(5), 20)
	input := strings.Repeat("r\nr\np\n", 200)
	var out bytes.Buffer

	require.NoError(t, play(g, strings.NewReader(input), &out, time.Microsecond, 10))
	require.True(t, g.Over())
	require.Contains(t, out.String(), " wins ")
}

func TestPlayEOF(t *testing.T) {
	g := model.NewGame(rng.Seeded(1), 100)
	var out bytes.Buffer
	require.NoError(t, play(g, strings.NewReader(""), &out, time.Millisecond, 20))
}
