package timelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAndParseEvent(t *testing.T) {
	event := Event{Time: "09:30:00 AM", Kind: KindIn}

	raw := FormatEvent(event)
	assert.Equal(t, "09:30:00 AM in", raw)

	parsed, err := ParseEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, event, parsed)

	parsed, err = ParseEvent("17:00:00   OUT")
	require.NoError(t, err)
	assert.Equal(t, Event{Time: "17:00:00", Kind: KindOut}, parsed)
}

func TestParseEvent_Errors(t *testing.T) {
	_, err := ParseEvent("09:00:00")
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = ParseEvent("09:00:00 AM lunch")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestReadEvents(t *testing.T) {
	input := strings.Join([]string{
		"# monday",
		"",
		"08:00:00 AM in",
		"not an event",
		"12:00:00 PM out",
		"   13:00:00 in  ",
	}, "\n")

	events, err := ReadEvents(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Event{
		{Time: "08:00:00 AM", Kind: KindIn},
		{Time: "12:00:00 PM", Kind: KindOut},
		{Time: "13:00:00", Kind: KindIn},
	}, events)
}

func TestEventComplete(t *testing.T) {
	assert.True(t, Event{Time: "9:00:00 AM", Kind: KindIn}.Complete())
	assert.False(t, Event{Time: "", Kind: KindIn}.Complete())
	assert.False(t, Event{Time: "  ", Kind: KindOut}.Complete())
	assert.False(t, Event{Time: "9:00:00 AM"}.Complete())
	assert.False(t, Event{Time: "9:00:00 AM", Kind: "lunch"}.Complete())
}

func TestKind(t *testing.T) {
	k, err := ParseKind(" In ")
	require.NoError(t, err)
	assert.Equal(t, KindIn, k)
	assert.Equal(t, KindOut, k.Opposite())
	assert.Equal(t, KindIn, KindOut.Opposite())
	assert.Equal(t, "clocked out", KindOut.Label())

	_, err = ParseKind("break")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestLogAppend(t *testing.T) {
	log := NewLog()
	assert.Equal(t, KindIn, log.NextKind())

	idx, err := log.Append(" 9:00:00 AM ", KindIn)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, KindOut, log.NextKind())

	_, err = log.Append("9:30 AM", KindOut)
	assert.ErrorIs(t, err, ErrInvalidClock)
	assert.Equal(t, 1, log.Len(), "rejected entries must not be recorded")

	_, err = log.Append("17:00:00", "break")
	assert.ErrorIs(t, err, ErrInvalidKind)

	idx, err = log.Append("05:00:00 PM", KindOut)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	assert.Equal(t, []Event{
		{Time: "9:00:00 AM", Kind: KindIn},
		{Time: "05:00:00 PM", Kind: KindOut},
	}, log.Events())
}

func TestLogEdit(t *testing.T) {
	log := NewLog(
		Event{Time: "09:00:00 AM", Kind: KindIn},
		Event{Time: "12:00:00 PM", Kind: KindOut},
	)
	assert.Equal(t, KindIn, log.NextKind())

	require.NoError(t, log.Edit(1, "12:30:00 PM"))
	got, err := log.At(1)
	require.NoError(t, err)
	assert.Equal(t, Event{Time: "12:30:00 PM", Kind: KindOut}, got)

	assert.ErrorIs(t, log.Edit(5, "12:30:00 PM"), ErrNoSuchEvent)
	assert.ErrorIs(t, log.Edit(0, "25:00"), ErrInvalidClock)

	_, err = log.At(-1)
	assert.ErrorIs(t, err, ErrNoSuchEvent)
}

func TestLogEventsIsSnapshot(t *testing.T) {
	log := NewLog(Event{Time: "09:00:00 AM", Kind: KindIn})
	snapshot := log.Events()
	snapshot[0].Time = "changed"

	got, err := log.At(0)
	require.NoError(t, err)
	assert.Equal(t, "09:00:00 AM", got.Time)
}
