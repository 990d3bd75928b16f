package main

import (
	"bikeshare/explorer/config"
	"bikeshare/loader"
	loaderConfig "bikeshare/loader/config"
	"bikeshare/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	logLevelEnv     = "LOG_LEVEL"
	defaultLogLevel = "info"
	interruptedCode = 130
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned. Logs are written to stderr, the reports use stdout
func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	return nil
}

func getLogLevel() string {
	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		return logLevel
	}
	return defaultLogLevel
}

func main() {
	envErr := godotenv.Load()

	if err := InitLogger(getLogLevel()); err != nil {
		log.Fatalf("%s", err)
		return
	}
	if envErr != nil {
		log.Debugf("[explorer] no .env file loaded: %s", envErr.Error())
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Errorf("Error loading explorer config: %s", err.Error())
		return
	}

	datasetLoaderConfig, err := loaderConfig.LoadConfig()
	if err != nil {
		log.Errorf("Error loading loader config: %s", err.Error())
		return
	}

	explorer := NewExplorer(explorerConfig, loader.NewLoader(datasetLoaderConfig), os.Stdin, os.Stdout)

	signalChannel := utils.GetSignalChannel()
	done := make(chan error, 1)
	go func() {
		done <- explorer.Run()
	}()

	select {
	case sig := <-signalChannel:
		log.Infof("[explorer] received signal %s, exiting", sig)
		os.Exit(interruptedCode)
	case err := <-done:
		if err != nil {
			log.Errorf("Error running explorer: %s", err.Error())
			os.Exit(1)
		}
	}

	log.Debug("[explorer] Finish main.go")
}
