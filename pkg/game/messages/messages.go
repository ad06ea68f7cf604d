// Package messages holds the player-facing text catalog and the markup used
// inside catalog entries.
//
// Markup is FUNC{operand}: GT{KEY} translates, ROOM{n} names and colours a
// room, KEY{text} and ACTION{word} colour their operand.
package messages

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var enPo []byte

var (
	catalog *gotext.Po

	colorRoom        = color.Style{color.FgBlue, color.OpBold}
	colorKey         = color.Style{color.FgYellow, color.OpBold}
	colorAction      = color.Style{color.FgMagenta}
	colorActionShort = color.Style{color.FgMagenta, color.OpBold}

	markup = regexp.MustCompile(`([A-Z_]*){([a-z A-Z0-9_,:./-]+)}`)
)

// lookup returns the raw catalog entry for a key. It is a function variable
// so vet does not read catalog keys as format strings.
var lookup func(key string, vars ...any) string

func init() {
	catalog = gotext.NewPo()
	catalog.Parse(enPo)
	lookup = catalog.Get
}

// T returns the catalog entry for key formatted with vars. Unknown keys are
// returned as they are.
func T(key string, vars ...any) string {
	msg := lookup(key)
	if len(vars) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, vars...)
}

// Format translates key and expands markup in the result
func Format(key string, vars ...any) string {
	return Expand(T(key, vars...))
}

// Expand replaces markup with coloured text
func Expand(msg string) string {
	for _, match := range markup.FindAllStringSubmatch(msg, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = T(operand)
		case "ROOM":
			val = colorRoom.Sprint(roomName(operand))
		case "KEY":
			val = colorKey.Sprint(operand)
		case "ACTION":
			val = colorActionShort.Sprint(operand[0:1]) + colorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		msg = strings.Replace(msg, match[0], val, 1)
	}
	return msg
}

// Plain strips colour codes, for renderers that draw their own text
func Plain(s string) string {
	return color.ClearCode(s)
}

func roomName(operand string) string {
	n, err := strconv.Atoi(operand)
	if err != nil {
		return operand
	}
	return T("ROOM_NAME", n)
}
