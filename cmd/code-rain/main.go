// Command code-rain renders green character columns falling down the
// terminal until any key is pressed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/matiaslindgren/code-rain/audio"
	"github.com/matiaslindgren/code-rain/rain"
)

var (
	timeStepSec = flag.Float64("time-step-sec", 0.01, "seconds to sleep between rendering steps")
	minSpeed    = flag.Float64("min-falling-speed", 0.05, "minimum falling speed for characters")
	latinChance = flag.Float64("latin-chance", rain.DefaultLatinChance, "probability of drawing a two-character Latin token")
	withAudio   = flag.Bool("audio", false, "play ambient rain audio")
	debugMode   = flag.Bool("debug", false, "write debug logs to "+logDir)
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugMode); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash, otherwise the
	// stack trace lands on the alternate screen and vanishes.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "code-rain crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tick := time.Duration(*timeStepSec * float64(time.Second))
	r, err := rain.New(screen, rng, *minSpeed, *latinChance, tick)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("rain started: %d columns, tick %v", r.Columns(), tick)

	if *withAudio {
		var ambience audio.Ambience
		if err := ambience.Start(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		} else {
			defer ambience.Stop()
		}
	}

	// Input pump goroutine; the animation loop drains it without
	// blocking between steps.
	keyCh := make(chan struct{}, 1)
	go func() {
		for {
			switch screen.PollEvent().(type) {
			case *tcell.EventKey:
				keyCh <- struct{}{}
				return
			case *tcell.EventResize:
				// Geometry is fixed for the session; just repaint.
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	for running := true; running; {
		select {
		case <-keyCh:
			running = false
		default:
			r.Step()
		}
	}

	screen.Fini()
}
