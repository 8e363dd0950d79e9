package utils

import (
	"log"
	"os"
)

// InitLogger returns the server logger.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[EcoAlly] ", log.LstdFlags|log.LUTC)
}
