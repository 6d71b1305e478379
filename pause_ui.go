package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	pausePanelColor  = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 210}
	pauseButtonColor = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x4a, A: 255}
	pauseTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pauseDimColor    = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xb4, A: 0xff}
)

// NewPauseUI builds the pause overlay: a centered panel holding the title,
// Resume and Quit, and a controls legend. Everything is drawn from flat
// colors and the bundled basic font, so pausing works with no theme assets
// on disk.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := pauseFace()

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(pausePanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 36, Right: 36}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/2, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(pauseLabel("Paused", face, pauseTextColor))
	panel.AddChild(pauseButton("Resume", face, func() { g.paused = false }))
	panel.AddChild(pauseButton("Quit", face, func() { g.quit = true }))
	panel.AddChild(pauseLabel("A/D move   Space jump   J attack   S block   Shift dash", face, pauseDimColor))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func pauseFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func pauseLabel(text string, face *ebtext.Face, clr color.NRGBA) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, clr),
		widget.TextOpts.WidgetOpts(pauseRowCenter()),
	)
}

func pauseButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(pauseButtonColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: pauseTextColor}),
		widget.ButtonOpts.WidgetOpts(pauseRowCenter()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func pauseRowCenter() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}
