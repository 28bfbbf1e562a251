package countdown

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/persimmon/internal/config"
)

const label = "Persimmon Pomodoro"

type recordingTitler struct {
	current string
	writes  []string
}

func (r *recordingTitler) Title() string { return r.current }

func (r *recordingTitler) SetTitle(title string) {
	r.current = title
	r.writes = append(r.writes, title)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{900, "15:00"},
		{1799, "29:59"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.seconds))
		})
	}
}

func TestStartRejectsNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	timer := New(NewMockTitler(ctrl), label)

	_, err := timer.Start(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	assert.False(t, timer.Running())
}

func TestStartRejectsMoreThanOneDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	timer := New(NewMockTitler(ctrl), label)

	_, err := timer.Start(config.MaxDurationMinutes*60 + 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	assert.False(t, timer.Running())
}

func TestFiveSecondCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	titler := NewMockTitler(ctrl)
	gomock.InOrder(
		titler.EXPECT().Title().Return("shell"),
		titler.EXPECT().SetTitle("0:05 - "+label),
		titler.EXPECT().SetTitle("0:04 - "+label),
		titler.EXPECT().SetTitle("0:03 - "+label),
		titler.EXPECT().SetTitle("0:02 - "+label),
		titler.EXPECT().SetTitle("0:01 - "+label),
		titler.EXPECT().SetTitle("shell"),
	)

	timer := New(titler, label)
	gen, err := timer.Start(5)
	require.NoError(t, err)

	var observed []int
	for {
		remaining, ok := timer.Remaining()
		if !ok {
			break
		}
		observed = append(observed, remaining)
		result := timer.Tick(gen)
		if result == TickFinished {
			break
		}
		require.Equal(t, TickContinue, result)
	}

	assert.Equal(t, []int{5, 4, 3, 2, 1}, observed)
	assert.False(t, timer.Running())
	_, ok := timer.Remaining()
	assert.False(t, ok)
	assert.Equal(t, TickStale, timer.Tick(gen))
}

func TestRestartSupersedesPreviousTicks(t *testing.T) {
	titler := &recordingTitler{current: "shell"}
	timer := New(titler, label)

	first, err := timer.Start(10)
	require.NoError(t, err)
	require.Equal(t, TickContinue, timer.Tick(first))

	second, err := timer.Start(3)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	writes := len(titler.writes)
	assert.Equal(t, TickStale, timer.Tick(first))
	assert.Len(t, titler.writes, writes, "stale tick must not write the title")

	remaining, _ := timer.Remaining()
	assert.Equal(t, 3, remaining)

	assert.Equal(t, TickContinue, timer.Tick(second))
	assert.Equal(t, TickContinue, timer.Tick(second))
	assert.Equal(t, TickFinished, timer.Tick(second))
	assert.Equal(t, "shell", titler.current, "restores the title captured before the first run")
}

func TestStopRestoresTitleAndInvalidatesTicks(t *testing.T) {
	titler := &recordingTitler{current: "shell"}
	timer := New(titler, label)

	gen, err := timer.Start(60)
	require.NoError(t, err)
	assert.Equal(t, "1:00 - "+label, titler.current)

	timer.Stop()
	assert.Equal(t, "shell", titler.current)
	assert.False(t, timer.Running())
	assert.Equal(t, TickStale, timer.Tick(gen))
}

func TestStopWhileIdleLeavesTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	titler := NewMockTitler(ctrl)
	timer := New(titler, label)

	before := timer.Generation()
	timer.Stop()
	assert.Greater(t, timer.Generation(), before)
}

func TestElapsed(t *testing.T) {
	titler := &recordingTitler{}
	timer := New(titler, "")
	assert.Zero(t, timer.Elapsed())

	gen, err := timer.Start(4)
	require.NoError(t, err)
	assert.Equal(t, "0:04", titler.current)
	timer.Tick(gen)
	assert.InDelta(t, 0.25, timer.Elapsed(), 1e-9)
	assert.Equal(t, 4, timer.Total())
}
