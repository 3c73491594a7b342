package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Logta/aco-simulation/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: acoreplay info <file.acrp>")
			return
		}
		printInfo(os.Args[2], false)
	case "dump":
		if len(os.Args) < 3 {
			fmt.Println("Usage: acoreplay dump <file.acrp>")
			return
		}
		printInfo(os.Args[2], true)
	default:
		printHelp()
	}
}

func printInfo(path string, withActions bool) {
	svc := &storage.ReplayService{}
	session, err := svc.Load(path)
	if err != nil {
		fmt.Printf("Failed to load replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Instance:  %s\n", session.Instance)
	fmt.Printf("Seed:      %d\n", session.Seed)
	fmt.Printf("Recorded:  %s\n", time.Unix(session.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("Params:    %.0fx%.0f ants=%d decay=%.3f (%s) deposit=%.1f tracking=%.2f speed=%.1f\n",
		session.Params.Width, session.Params.Height,
		session.Params.AntCount,
		session.Params.DecayRate, session.Params.DecayModel,
		session.Params.DepositAmount,
		session.Params.TrackingStrength,
		session.Params.Speed)
	fmt.Printf("Actions:   %d\n", len(session.Actions))

	if !withActions {
		return
	}

	fmt.Println()
	for i, act := range session.Actions {
		payload := string(act.Payload)
		if payload == "" {
			payload = "{}"
		}
		fmt.Printf("%4d  tick=%-8d %-14s token=%-18s %s\n",
			i, act.Tick, act.Action, act.Token, payload)
	}
}

func printHelp() {
	fmt.Println(`ACO Replay Tool - просмотр .acrp файлов
Commands:
  info <file.acrp>  - заголовок реплея: сид, параметры, число действий
  dump <file.acrp>  - то же + полная лента действий`)
}
