package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"smashout/audio"
	"smashout/constants"
	"smashout/game"
	"smashout/input"
	"smashout/render"
)

const (
	logDir      = "logs"
	logFileName = "smashout.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	muteFlag  = flag.Bool("mute", false, "Start with audio muted")
	debugFlag = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
)

// setupLogging routes the stdlib logger to a rotating file when debugging,
// and to io.Discard otherwise; the terminal is in raw mode while the game
// runs, so stderr output would corrupt the display
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes, then re-raise the
	// failure where it is visible
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSMASHOUT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	} else {
		defer player.Close()
	}
	if *muteFlag {
		player.ToggleMute()
	}

	run(screen, player)
}

// run owns the initial state and the repeat-forever frame schedule:
// transition, detect, resolve, then render and audio, once per tick.
func run(screen tcell.Screen, player *audio.Player) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := game.NewState(rng)
	keys := input.NewState()
	renderer := render.New(screen)

	events := make(chan tcell.Event, constants.InputEventBuffer)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	renderer.Draw(&state)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				renderer.Resize()
			case *tcell.EventKey:
				k, ok := input.Translate(ev)
				if !ok {
					continue
				}
				switch k {
				case input.KeyQuit:
					return
				case input.KeyMute:
					player.ToggleMute()
				default:
					keys.Press(k)
				}
			}

		case <-ticker.C:
			prev := state
			next := game.Transition(prev, keys)

			// While paused nothing moved, so detection and resolution
			// are skipped along with audio
			if !next.Paused {
				cols := game.Detect(next, prev)
				game.Resolve(cols, &next, prev)
				audio.React(player, cols, &next, &prev)

				if len(next.Bricks) == 0 && next.Serving {
					next = game.NewRound(next, rng)
				}
			}

			renderer.Draw(&next)
			keys.Tick()
			state = next
		}
	}
}
