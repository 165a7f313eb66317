package main

import (
	"fintrack/internal/app"
	"os"

	"github.com/sirupsen/logrus"
)

// @title fintrack currency API
// @version 1.0
// @description Exchange rates, currency conversion and display settings for the finance tracker.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped")
		os.Exit(1)
	}
}
