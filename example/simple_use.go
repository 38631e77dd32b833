package main

import (
	"fmt"
	"time"

	"github.com/leandrodaf/strum/internal/logger"
	"github.com/leandrodaf/strum/sdk/contracts"
	"github.com/leandrodaf/strum/sdk/guitar"
)

// A few open-chord shapes, low E to high e. Muted marks strings that
// are not strummed.
var chords = map[string]contracts.Frets{
	"G":  {3, 2, 0, 0, 0, 3},
	"C":  {contracts.Muted, 3, 2, 0, 1, 0},
	"D":  {contracts.Muted, contracts.Muted, 0, 2, 3, 2},
	"Em": {0, 2, 2, 0, 0, 0},
	"Am": {contracts.Muted, 0, 2, 2, 1, 0},
}

func main() {
	log := logger.NewZapLogger()

	client, err := guitar.NewAudioClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to initialize audio client", log.Field().Error("error", err))
		return
	}
	defer client.Close()

	if !client.Audible() {
		fmt.Println("No audio device found; running silent.")
	}

	for _, name := range []string{"G", "C", "D", "G"} {
		fmt.Println("Strumming", name)
		if err := client.PlayChord(chords[name]); err != nil {
			log.Error("Failed to play chord", log.Field().Error("error", err))
			return
		}
		time.Sleep(1500 * time.Millisecond)
	}

	met, err := guitar.NewMetronome(client,
		contracts.WithLogger(log),
		contracts.WithBPM(100),
	)
	if err != nil {
		log.Error("Failed to create metronome", log.Field().Error("error", err))
		return
	}

	met.Start(func(beat int) {
		fmt.Println("Beat", beat+1)
	})
	time.Sleep(5 * time.Second)
	met.Stop()

	client.StopAll()
}
