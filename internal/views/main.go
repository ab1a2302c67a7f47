package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"modeshell/internal/state"
)

const (
	modeLight = "Light"
	modeDark  = "Dark"
)

// Sender hands a message to the event loop.
type Sender func(state.Message)

// MainView holds the two mutually exclusive view trees: the mode controls
// and the exit confirmation.
type MainView struct {
	window fyne.Window
	send   Sender

	modeRadio   *widget.RadioGroup
	confirmBtn  *widget.Button
	cancelBtn   *widget.Button
	controls    fyne.CanvasObject
	exitDialog  fyne.CanvasObject
	showingExit *bool

	// set while the view itself is syncing widgets to state
	syncing bool
}

func NewMainView(window fyne.Window, send Sender) *MainView {
	mv := &MainView{
		window: window,
		send:   send,
	}

	mv.buildControls()
	mv.buildExitDialog()

	return mv
}

func (mv *MainView) buildControls() {
	mv.modeRadio = widget.NewRadioGroup([]string{modeLight, modeDark}, func(selected string) {
		if mv.syncing || selected == "" {
			return
		}
		mv.send(state.SetDisplayMode{Dark: selected == modeDark})
	})
	mv.modeRadio.Horizontal = true
	mv.modeRadio.Required = true

	mv.controls = container.NewCenter(container.NewHBox(
		widget.NewLabel("Mode:"),
		mv.modeRadio,
	))
}

func (mv *MainView) buildExitDialog() {
	mv.confirmBtn = widget.NewButton("Confirm", func() {
		mv.send(state.ExitConfirmed{Confirmed: true})
	})
	mv.confirmBtn.Importance = widget.HighImportance
	mv.cancelBtn = widget.NewButton("Cancel", func() {
		mv.send(state.ExitConfirmed{Confirmed: false})
	})

	mv.exitDialog = container.NewCenter(container.NewVBox(
		widget.NewLabel("Are you sure you want to exit?"),
		container.NewCenter(container.NewHBox(mv.confirmBtn, mv.cancelBtn)),
	))
}

// Update syncs widgets to s and swaps the window content when the dialog
// flag changed. Must run on the fyne main goroutine.
func (mv *MainView) Update(s state.ApplicationState) {
	selected := modeLight
	if s.Theme() == state.ThemeDark {
		selected = modeDark
	}
	if mv.modeRadio.Selected != selected {
		mv.syncing = true
		mv.modeRadio.SetSelected(selected)
		mv.syncing = false
	}

	if mv.showingExit != nil && *mv.showingExit == s.ShowExitDialog {
		return
	}
	showing := s.ShowExitDialog
	mv.showingExit = &showing
	if showing {
		mv.window.SetContent(mv.exitDialog)
	} else {
		mv.window.SetContent(mv.controls)
	}
}
