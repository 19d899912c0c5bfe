package sdes

import "github.com/btcsuite/btclog/v2"

// Subsystem код подсистемы для логирования
const Subsystem = "SDES"

// log по умолчанию отключён
var log btclog.Logger = btclog.Disabled

// DisableLog отключает вывод логов пакета
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger задаёт логгер пакета
func UseLogger(logger btclog.Logger) {
	log = logger
}
