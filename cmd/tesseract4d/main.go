package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lukaszgryglicki/tesseract4d/internal/display"
	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

func main() {
	theme := tesseract4d.DefaultTheme()
	if len(os.Args) > 1 {
		t, err := tesseract4d.LoadTheme(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		theme = t
	}

	speed := 1.0
	if v := os.Getenv("SPEED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			speed = f
		}
	}

	// GIF=out.gif renders headlessly instead of opening a window.
	if out := os.Getenv("GIF"); out != "" {
		frames := envInt("FRAMES", 240)
		size := envInt("SIZE", 480)
		if err := tesseract4d.SaveAnimatedGIF(theme, out, frames, size, size, 3, speed/60.0); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Saved animated GIF:", out)
		return
	}

	win := display.New("main", 640, 640, "tesseract4d")
	r, err := tesseract4d.NewRenderer(theme, win, win.Resolve)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	r.SetSpeed(speed)
	r.Start("main")
	if err := win.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
