package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"classtrack/core"
	"classtrack/core/track"
	"classtrack/core/user"
	logsvc "classtrack/services/logger"
	badgerkv "classtrack/storage/kv/badger"
	inmemkv "classtrack/storage/kv/inmem"
	sqlitekv "classtrack/storage/kv/sqlite"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stderr, "TRACKER : ", log.LstdFlags)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatalf("%+v", err)
	}
	logger := newLogger(std, conf)

	kv, err := openStore(conf)
	if err != nil {
		logger.Fatal("opening storage", err)
	}
	defer func() { _ = kv.Close() }()

	usrSvc := user.NewService(kv, logger)
	trackSvc := track.NewService(kv, logger)
	if usr, ok := usrSvc.Current(); ok {
		trackSvc.SetUser(usr)
	}

	// start CLI
	cli := &commandLine{
		out:      os.Stdout,
		usrSvc:   usrSvc,
		trackSvc: trackSvc,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func newLogger(std *log.Logger, conf *core.Config) core.Logger {
	if conf.Rollbar.Token != "" {
		return logsvc.NewRollbarLogger(std, conf)
	}
	return logsvc.NewStdLogger(std, conf)
}

func openStore(conf *core.Config) (core.KVStore, error) {
	switch conf.Storage.Engine {
	case "inmem":
		return inmemkv.NewStore(), nil
	case "badger":
		if err := os.MkdirAll(conf.Storage.Dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating storage dir")
		}
		return badgerkv.Open(filepath.Join(conf.Storage.Dir, "badger"))
	case "sqlite":
		if err := os.MkdirAll(conf.Storage.Dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating storage dir")
		}
		return sqlitekv.Open(filepath.Join(conf.Storage.Dir, "tracker.db"))
	default:
		return nil, errors.Errorf("unknown storage engine %q", conf.Storage.Engine)
	}
}
