package logginghelper

import (
	log "github.com/sirupsen/logrus"
)

func LogAnalyzed(logLevel string, totalDefects int, path string) {
	log.WithFields(log.Fields{
		"log_level": logLevel,
		"defects":   totalDefects,
		"path":      path,
	}).Info("Log analysis completed")
}

func LogSearched(keyword string, totalMatches int, path string) {
	log.WithFields(log.Fields{
		"keyword": keyword,
		"matches": totalMatches,
		"path":    path,
	}).Info("Log search completed")
}

func LogError(operation string, err error) {
	log.WithFields(log.Fields{
		"operation": operation,
		"error":     err,
	}).Error("Operation failed")
}
