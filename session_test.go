package bidwhist

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidwhist/config"
	"bidwhist/game"
)

type lines struct {
	mu sync.Mutex
	l  []string
}

func (l *lines) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.l = append(l.l, s)
}

func (l *lines) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.l...)
}

func botConfig(seed int64) *config.Config {
	cfg := config.Default()
	for i := range cfg.Players {
		cfg.Players[i].Kind = config.KindHeuristic
	}
	cfg.Seed = seed
	return cfg
}

func memoryTranscript(rec *lines) InitOption {
	return WithTranscript(func(id string) *Transcript {
		return NewTranscript(id, rec.add, 1<<16)
	})
}

func TestSessionRunsUntilTarget(t *testing.T) {
	var (
		rec     lines
		answers int
		out     bytes.Buffer
	)
	s, err := InitProject(botConfig(11), strings.NewReader(""), &out, memoryTranscript(&rec),
		WithAnswerLog(func(game.Seat, string, string) { answers++ }))
	require.NoError(t, err)

	team, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	scores := s.State().Scores()
	assert.GreaterOrEqual(t, scores[team], game.GameWinningScore)
	assert.Positive(t, answers)
	assert.Contains(t, out.String(), team.String()+" wins the game.")

	transcript := rec.all()
	require.NotEmpty(t, transcript)
	assert.Contains(t, transcript[0], "seed 11")
	assert.Contains(t, transcript[0], "["+shortID(s.ID)+"]")
	assert.Contains(t, strings.Join(transcript, "\n"), "wins the trick")
}

func TestSessionHumanQuits(t *testing.T) {
	cfg := botConfig(3)
	cfg.Players[0].Kind = config.KindHuman

	var (
		rec lines
		out bytes.Buffer
	)
	s, err := InitProject(cfg, strings.NewReader("-1\n"), &out, memoryTranscript(&rec),
		WithAnswerLog(func(game.Seat, string, string) {}))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrQuit)
	assert.Equal(t, DecisionCode, CodeOf(err))
	assert.Contains(t, out.String(), "Player 1")
}

func TestSessionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var rec lines
	s, err := InitProject(botConfig(5), strings.NewReader(""), &bytes.Buffer{}, memoryTranscript(&rec),
		WithAnswerLog(func(game.Seat, string, string) {}))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, GeneralCode, CodeOf(err))
}

func TestInitProjectRejectsConfig(t *testing.T) {
	cfg := botConfig(1)
	cfg.Players[2].Kind = config.KindOpenAI

	_, err := InitProject(cfg, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, ConfigCode, CodeOf(err))

	cfg = botConfig(1)
	cfg.Players[0].Kind = config.KindHuman
	cfg.Players[1].Kind = config.KindHuman
	var rec lines
	_, err = InitProject(cfg, strings.NewReader(""), &bytes.Buffer{}, memoryTranscript(&rec))
	require.Error(t, err)
	assert.Equal(t, ConfigCode, CodeOf(err))
}

func TestTranscriptDropsWhenFull(t *testing.T) {
	var (
		rec     lines
		release = make(chan struct{})
	)
	tr := NewTranscript("0123456789", func(line string) {
		<-release
		rec.add(line)
	}, 1)

	for i := 0; i < 3; i++ {
		tr.Line("line")
	}
	assert.GreaterOrEqual(t, tr.Dropped(), uint64(1))

	close(release)
	err := tr.Close()
	require.Error(t, err)
	assert.Equal(t, TranscriptCode, CodeOf(err))
	assert.Len(t, rec.all(), 3-int(tr.Dropped()))
	for _, l := range rec.all() {
		assert.Contains(t, l, "[01234567] line")
	}

	written, dropped := len(rec.all()), tr.Dropped()
	tr.Line("after close")
	assert.Len(t, rec.all(), written)
	assert.Equal(t, dropped+1, tr.Dropped())
}

func TestBarrier(t *testing.T) {
	b := NewBarrier()
	boom := errors.New("boom")

	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Done(boom)
		b.Done(nil)
	}()

	assert.ErrorIs(t, b.Wait(), boom)
	assert.ErrorIs(t, b.Wait(), boom)
}

func TestAppError(t *testing.T) {
	cause := errors.New("bad json")
	err := AppError(ConfigCode, "invalid configuration", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Reason())
	assert.Equal(t, ConfigCode, CodeOf(err))
	assert.Equal(t, GeneralCode, CodeOf(cause))
	assert.Contains(t, err.Error(), "invalid configuration")

	plain := AppError(TranscriptCode, "disk full", "path .log")
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, "5: disk full", plain.Error())
}
