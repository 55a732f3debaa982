// Package logging configures the process-wide logrus logger.
package logging

import (
	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
)

// Setup installs the nested formatter and sets the level. An unknown level
// falls back to info.
func Setup(level string) {
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		FieldsOrder:     []string{"component", "view"},
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.WithField("component", "logging").Warnf("Unknown log level %q, using info", level)
		return
	}
	log.SetLevel(lvl)
}

// For returns a logger tagged with a component name.
func For(component string) *log.Entry {
	return log.WithField("component", component)
}
