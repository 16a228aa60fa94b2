package term

import (
	"tappy/internal/hud"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the terminal front end to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPress
	ActionMusic
	ActionScore
	ActionReset
	ActionGameOver
)

// Command is a decoded key press. Button is set for ActionPress.
type Command struct {
	Action Action
	Button string
}

var runeCommands = map[rune]Command{
	'q': {Action: ActionQuit},
	'p': {Action: ActionPress, Button: hud.ButtonPlay},
	'1': {Action: ActionPress, Button: hud.ButtonShop},
	'2': {Action: ActionPress, Button: hud.ButtonLogin},
	'3': {Action: ActionPress, Button: hud.ButtonShare},
	'4': {Action: ActionPress, Button: hud.ButtonFriends},
	'5': {Action: ActionPress, Button: hud.ButtonClose},
	'm': {Action: ActionMusic},
	' ': {Action: ActionScore},
	'r': {Action: ActionReset},
	'g': {Action: ActionGameOver},
}

// Decode maps a key event onto a command.
func Decode(ev *tcell.EventKey) Command {
	return DecodeKey(ev.Key(), ev.Rune())
}

// DecodeKey maps a key and, for tcell.KeyRune, its rune onto a command.
func DecodeKey(k tcell.Key, r rune) Command {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyEnter:
		return Command{Action: ActionPress, Button: hud.ButtonPlay}
	case tcell.KeyRune:
		if cmd, ok := runeCommands[r]; ok {
			return cmd
		}
	}
	return Command{}
}
