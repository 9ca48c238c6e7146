package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/hr-diagram/internal/config"
	"github.com/ytget/hr-diagram/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.hr-diagram"
	AppName = "HR Diagram"

	WindowWidth  = 1000
	WindowHeight = 900
)

func main() {
	// Log version information
	fmt.Printf("HR Diagram v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	fmt.Printf("Reading track tables from %s\n", settings.GetDataDirectory())

	ui.NewRootUI(myWindow, myApp)

	myWindow.ShowAndRun()
}
