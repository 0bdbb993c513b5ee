package main

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// showReport draws lines and waits for a key press.
func showReport(lines []string) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	if termbox.SetOutputMode(termbox.Output256) != termbox.Output256 {
		termbox.SetOutputMode(termbox.OutputNormal)
	}

	width, _ := termbox.Size()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	drawLine(0, "vksurface (any key to quit)", width, termbox.ColorWhite|termbox.AttrBold)
	for t, line := range lines {
		drawLine(t+2, line, width, termbox.ColorDefault)
	}
	if err := termbox.Flush(); err != nil {
		return err
	}

	for {
		if ev := termbox.PollEvent(); ev.Type == termbox.EventKey || ev.Type == termbox.EventError {
			return ev.Err
		}
	}
}

func drawLine(y int, text string, width int, fg termbox.Attribute) {
	x := 0
	for _, r := range runewidth.Truncate(text, width, "…") {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
