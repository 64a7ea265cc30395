// Package commands maps chat text to the bot's replies.
package commands

import (
	"strconv"
	"strings"
	"time"
)

// Command names the branch a reply came from.
type Command string

const (
	Empty Command = "empty"
	Start Command = "start"
	Help  Command = "help"
	Time  Command = "time"
	Dice  Command = "dice"
	Echo  Command = "echo"
)

const (
	TextOnlyNotice = "I currently respond to text messages only."
	Greeting       = "Hello! I'm a demo bot written in Go.\n" +
		"Send me anything and I'll echo it back, or ask me for the time or a dice roll."
	HelpText = "Available commands:\n" +
		"/start - start the conversation\n" +
		"/help - show this message\n" +
		"/time - get the current time\n" +
		"/dice - roll a virtual die"

	// TimeLayout is YYYY-MM-DD HH:MM:SS.
	TimeLayout = "2006-01-02 15:04:05"
	timePrefix = "Current time (UTC): "
	dicePrefix = "🎲 Dice roll: "
	echoPrefix = "I received your message: "
)

type handler struct {
	command Command
	reply   func(now time.Time) string
}

var table = map[string]handler{
	"/start": {Start, func(time.Time) string { return Greeting }},
	"/help":  {Help, func(time.Time) string { return HelpText }},
	"/time":  {Time, TimeReply},
	"/dice":  {Dice, DiceReply},
}

// Reply returns the reply for an incoming text evaluated at now, and the command it matched.
// Commands match the whole trimmed text, ignoring case.
func Reply(text string, now time.Time) (string, Command) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TextOnlyNotice, Empty
	}
	if h, ok := table[strings.ToLower(text)]; ok {
		return h.reply(now), h.command
	}
	return EchoReply(text), Echo
}

func TimeReply(now time.Time) string {
	return timePrefix + now.UTC().Format(TimeLayout)
}

func DiceReply(now time.Time) string {
	return dicePrefix + strconv.Itoa(DiceValue(now))
}

// DiceValue is (unix seconds mod 6) + 1. It is deterministic within a second.
func DiceValue(now time.Time) int {
	return int(((now.Unix()%6)+6)%6) + 1
}

func EchoReply(text string) string {
	return echoPrefix + text
}
