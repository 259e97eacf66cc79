package discord

import (
	"log"
	"time"
)

// step loguea la duración de label cuando se llama la func devuelta.
func step(label string) func() {
	start := time.Now()
	return func() { log.Printf("⏱️ [trace] %s = %s", label, time.Since(start).Round(time.Millisecond)) }
}
