package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/beeper/internal/domain"
	"github.com/renato0307/beeper/internal/ports/mocks"
	"github.com/renato0307/beeper/internal/services"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key to the board and runs the resulting command, feeding its message back
func press(t *testing.T, board *Board, msg tea.KeyMsg) tea.Msg {
	t.Helper()
	_, cmd := board.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	board.Update(out)
	return out
}

func newTestBoard(t *testing.T, names ...string) (*Board, *mocks.MockSoundTrigger) {
	trigger := mocks.NewMockSoundTrigger(t)
	playback := services.NewPlaybackService(trigger, nil)
	return NewBoard(playback, names, domain.OriginBoard), trigger
}

func TestBoard_CursorMovement(t *testing.T) {
	board, _ := newTestBoard(t, "alarm", "beep", "chime")

	press(t, board, runes("j"))
	assert.Equal(t, 1, board.Cursor())

	press(t, board, tea.KeyMsg{Type: tea.KeyDown})
	press(t, board, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, board.Cursor(), "cursor stops at the last entry")

	press(t, board, runes("k"))
	press(t, board, tea.KeyMsg{Type: tea.KeyUp})
	press(t, board, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, board.Cursor(), "cursor stops at the first entry")
}

func TestBoard_EnterPlaysSelectedSound(t *testing.T) {
	board, trigger := newTestBoard(t, "alarm", "beep")
	trigger.EXPECT().Play("beep").Return(nil).Once()

	press(t, board, runes("j"))
	msg := press(t, board, tea.KeyMsg{Type: tea.KeyEnter})

	require.IsType(t, playedMsg{}, msg)
	assert.Contains(t, board.View(), "played beep")
}

func TestBoard_SpacePlaysSelectedSound(t *testing.T) {
	board, trigger := newTestBoard(t, "beep")
	trigger.EXPECT().Play("beep").Return(nil).Twice()

	press(t, board, tea.KeyMsg{Type: tea.KeySpace})
	press(t, board, tea.KeyMsg{Type: tea.KeySpace})

	assert.Contains(t, board.View(), "played beep (2)")
}

func TestBoard_DigitPlaysByPosition(t *testing.T) {
	board, trigger := newTestBoard(t, "alarm", "beep", "chime")
	trigger.EXPECT().Play("chime").Return(nil).Once()

	press(t, board, runes("3"))

	assert.Equal(t, 2, board.Cursor())
}

func TestBoard_DigitOutOfRangeIsIgnored(t *testing.T) {
	board, _ := newTestBoard(t, "beep")

	msg := press(t, board, runes("5"))

	assert.Nil(t, msg)
	assert.Equal(t, 0, board.Cursor())
}

func TestBoard_ShowsFailure(t *testing.T) {
	board, trigger := newTestBoard(t, "beep")
	trigger.EXPECT().Play("beep").Return(&domain.UnknownSoundError{Name: "beep"}).Once()

	press(t, board, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, board.View(), "unknown sound: beep")
}

func TestBoard_EmptyBoard(t *testing.T) {
	board, _ := newTestBoard(t)

	msg := press(t, board, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, msg)
	assert.Contains(t, board.View(), "No sounds registered")
	assert.Contains(t, board.View(), "Nothing played yet")
}

func TestBoard_HelpToggle(t *testing.T) {
	board, _ := newTestBoard(t, "beep")
	assert.NotContains(t, board.View(), "play by position")

	press(t, board, runes("?"))

	assert.Contains(t, board.View(), "play by position")
}

func TestBoard_Quit(t *testing.T) {
	board, _ := newTestBoard(t, "beep")

	_, cmd := board.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBoard_NamesAreCopied(t *testing.T) {
	names := []string{"alarm", "beep"}
	board, _ := newTestBoard(t, names...)

	names[0] = "changed"

	assert.Contains(t, board.View(), "alarm")
}
