package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"singularity/internal/app"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	a, err := app.NewApp(window)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	a.Run()
}
