package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Logta/aco-simulation/internal/engine"
	"github.com/Logta/aco-simulation/internal/server"
	"github.com/Logta/aco-simulation/internal/version"
	"github.com/Logta/aco-simulation/pkg/logger"
	"github.com/Logta/aco-simulation/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var seedPhrase string
	var replayPath string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial simulation seed (0 for random)")
	flag.StringVar(&seedPhrase, "seed-phrase", "", "Derive the seed from a string (overrides -seed)")
	flag.StringVar(&replayPath, "replay", "", "Path to .acrp replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting ACO Simulation...")
	logger.Log.Info(version.String())

	// РЕЖИМ РЕПЛЕЯ: прогоняем файл синхронно и выходим
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		cfg := engine.NewConfig()
		gameService := engine.NewService(cfg)

		if err := gameService.LoadReplay(replayPath); err != nil {
			logger.Log.Fatal("Failed to load replay:", err)
		}

		// LoadReplay создал playback-инстанс(ы); запускаем их
		simulatedCount := 0
		for name, inst := range gameService.Instances {
			if inst.IsPlayback {
				gameService.StartPlayback(name)
				simulatedCount++
			}
		}

		if simulatedCount == 0 {
			logger.Log.Warn("No instances ready for playback found.")
		}

		return
	}

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seedPhrase != "" {
		// Запоминающаяся строка вместо числа: одна и та же фраза
		// всегда дает один и тот же запуск
		cfg.Seed = utils.StringToSeed(seedPhrase)
		logger.Log.Infof("🎲 Master Seed %d derived from phrase %q", cfg.Seed, seedPhrase)
	} else if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("ACO_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Stop()
	gameService.SaveReplays()

	logger.Log.Info("Done.")
}
