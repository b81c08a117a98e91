package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/marblecrush/marble"
)

var backgroundColour = color.RGBA{250, 250, 250, 255}

var screenColours = [marble.ColourCount]color.RGBA{
	marble.Blue:  {40, 90, 220, 255},
	marble.Red:   {215, 45, 45, 255},
	marble.Green: {40, 170, 70, 255},
	marble.Black: {20, 20, 20, 255},
}

var termColours = [marble.ColourCount]tcell.Color{
	marble.Blue:  tcell.ColorBlue,
	marble.Red:   tcell.ColorRed,
	marble.Green: tcell.ColorGreen,
	marble.Black: tcell.ColorBlack,
}

func screenColour(c marble.Colour) color.RGBA {
	if !c.Valid() {
		return color.RGBA{128, 128, 128, 255}
	}
	return screenColours[c]
}

func termStyle(c marble.Colour) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorWhite)
	if !c.Valid() {
		return style.Foreground(tcell.ColorGray)
	}
	return style.Foreground(termColours[c])
}
