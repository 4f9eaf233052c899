package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"sync"

	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuScene displays the main menu: start, camera settings, quit.
type MenuScene struct {
	ui           *ebitenui.UI
	sceneChanger SceneChanger
	once         sync.Once

	titleFace  text.Face
	normalFace text.Face

	sensLabel   *widget.Label
	invertLabel *widget.Label
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.Update()

	// Enter starts the game without reaching for the mouse.
	for _, key := range cfg.Input.Bindings[cfg.ActionMenuSelect].Keys {
		if inpututil.IsKeyJustPressed(key) {
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
			return
		}
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ms.ui != nil {
		ms.ui.Draw(screen)
	}
}

func (ms *MenuScene) configure() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ms.loadFonts()
	ms.buildUI()
}

func (ms *MenuScene) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	ms.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ms.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ms *MenuScene) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("IGNATIUS", &ms.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ms.button("Start", func() {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
	}))

	// Sensitivity row: label with -/+ buttons
	sensRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	ms.sensLabel = widget.NewLabel(
		widget.LabelOpts.Text(ms.sensText(), &ms.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	sensRow.AddChild(ms.button("-", func() { ms.adjustSensitivity(-0.05) }))
	sensRow.AddChild(ms.sensLabel)
	sensRow.AddChild(ms.button("+", func() { ms.adjustSensitivity(0.05) }))
	contentContainer.AddChild(sensRow)

	invertButton := ms.button("Toggle", func() {
		cfg.Camera.InvertY = !cfg.Camera.InvertY
		ms.invertLabel.Label = ms.invertText()
		ms.saveSettings()
	})
	ms.invertLabel = widget.NewLabel(
		widget.LabelOpts.Text(ms.invertText(), &ms.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	invertRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	invertRow.AddChild(invertButton)
	invertRow.AddChild(ms.invertLabel)
	contentContainer.AddChild(invertRow)

	contentContainer.AddChild(ms.button("Quit", func() {
		os.Exit(0)
	}))

	rootContainer.AddChild(contentContainer)
	ms.ui = &ebitenui.UI{Container: rootContainer}
}

func (ms *MenuScene) adjustSensitivity(delta float64) {
	s := cfg.Camera.MouseSensitivity + delta
	if s < 0.05 {
		s = 0.05
	}
	if s > 1.0 {
		s = 1.0
	}
	cfg.Camera.MouseSensitivity = s
	ms.sensLabel.Label = ms.sensText()
	ms.saveSettings()
}

func (ms *MenuScene) sensText() string {
	return fmt.Sprintf("Sensitivity %.2f", cfg.Camera.MouseSensitivity)
}

func (ms *MenuScene) invertText() string {
	if cfg.Camera.InvertY {
		return "Invert Y: on"
	}
	return "Invert Y: off"
}

func (ms *MenuScene) saveSettings() {
	_ = systems.SaveSettings(systems.CurrentSettings())
}

func (ms *MenuScene) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 32),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &ms.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
