// Command tidecore runs editor command scripts against a headless
// workspace, one command per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bethropolis/tidecore/internal/config"
	"github.com/bethropolis/tidecore/internal/logger"
	"github.com/bethropolis/tidecore/internal/workspace"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the exit, so deferred cleanup always happens. It
// returns the process exit code.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.NewFlags(fs)
	args, err := flags.Parse(argv)
	if err != nil {
		return 2
	}
	if *flags.Version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, version)
		return 0
	}

	res, loadErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	cfg := res.Config

	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), config.DefaultLogFileName)
	}
	logOut, closeLog, err := logger.OpenOutput(logPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)
	logger.EnableFilterDebug(*flags.DebugLog)

	logger.Infof("Starting %s %s", config.AppName, version)
	if loadErr != nil {
		logger.Warnf("Config: %v (using defaults)", loadErr)
	}
	res.Log()

	script, name := stdin, "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			logger.Errorf("Opening script: %v", err)
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		script, name = f, args[0]
	}

	ws := workspace.New(cfg, workspace.Options{Output: stdout})
	failed := runScript(ws, name, script, stdout, stderr)
	ws.Close()

	logger.Infof("%s finished, %d failed command(s)", config.AppName, failed)
	if failed > 0 {
		return 1
	}
	return 0
}
