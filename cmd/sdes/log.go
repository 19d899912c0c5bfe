package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog/v2"
	"github.com/dalival/cryptography/sdes"
)

const defaultLogLevel = "info"

var (
	rootLogger = btclog.NewSLogger(btclog.NewDefaultHandler(os.Stderr))

	// log логгер самой утилиты
	log = rootLogger.SubSystem("SDCL")
)

// setupLogging задаёт уровень логирования утилиты и пакета sdes
func setupLogging(levelName string) error {
	level, ok := btclog.LevelFromString(levelName)
	if !ok {
		return fmt.Errorf("неизвестный уровень логирования %q", levelName)
	}

	sdesLogger := rootLogger.SubSystem(sdes.Subsystem)
	sdesLogger.SetLevel(level)
	sdes.UseLogger(sdesLogger)

	log.SetLevel(level)
	return nil
}
