package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"webling/pkg/render"
	"webling/pkg/resource"
)

const (
	viewportWidth  = 600
	viewportHeight = 400
)

func main() {
	a := app.New()
	w := a.NewWindow("webling")
	w.Resize(fyne.NewSize(viewportWidth, viewportHeight+80))

	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, viewportWidth, viewportHeight)))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a URL and press Enter, or leave it empty for the default document")

	show := func(source, content string) {
		frame, err := paint(content)
		fyne.Do(func() {
			if err != nil {
				status.SetText("Render error: " + err.Error())
				return
			}
			canvasImg.Image = frame
			canvasImg.Refresh()
			status.SetText(source)
			w.SetTitle(fmt.Sprintf("webling - %s", source))
		})
	}

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("http://127.0.0.1:8888/index.html")
	urlEntry.OnSubmitted = func(url string) {
		if url == "" {
			go show("default document", resource.DefaultDocument)
			return
		}
		status.SetText("Loading " + url + "...")
		go func() {
			body, err := resource.NewFetcher(5*time.Second).Fetch(context.Background(), url)
			if err != nil {
				fyne.Do(func() { status.SetText("Error: " + err.Error()) })
				return
			}
			show(url, body)
		}()
	}

	topBar := container.NewBorder(nil, nil, nil, nil, urlEntry)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)

	// Keep focus on URL entry to prevent Tab freeze with no other focusable widgets
	w.Canvas().Focus(urlEntry)

	go show("default document", resource.DefaultDocument)
	w.ShowAndRun()
}

// paint renders content onto a fresh frame.
func paint(content string) (image.Image, error) {
	c := render.NewCanvas(viewportWidth, viewportHeight)
	renderer := resource.NewRenderer()
	renderer.SetConsole(nil)
	if _, err := renderer.Render(content, c); err != nil {
		return nil, err
	}
	return c.Image(), nil
}
