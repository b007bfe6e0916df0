package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"classtrack/core/track"
)

func (cli *commandLine) stats() error {
	if _, err := cli.currentUser(); err != nil {
		return err
	}
	s := cli.trackSvc.Overall()
	fmt.Fprintf(cli.out, "Classes done: %d\n", s.TotalCompleted)
	fmt.Fprintf(cli.out, "Remaining:    %d\n", s.Remaining)
	fmt.Fprintf(cli.out, "Progress:     %d%%\n", s.Percentage)
	return nil
}

func (cli *commandLine) report(args []string) error {
	usr, err := cli.currentUser()
	if err != nil {
		return err
	}
	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	courseID := reportCmd.String("course", "", "Report on a single course instead.")
	if err := reportCmd.Parse(args); err != nil {
		return err
	}

	if *courseID != "" {
		for _, c := range cli.trackSvc.Courses() {
			if c.ID == *courseID {
				fmt.Fprintln(cli.out, cli.trackSvc.CourseReport(c))
				return nil
			}
		}
		return errors.Errorf("no course with id %q", *courseID)
	}

	fmt.Fprintln(cli.out, cli.trackSvc.FullReport(usr, time.Now()))
	return nil
}

func (cli *commandLine) export(args []string) error {
	usr, err := cli.currentUser()
	if err != nil {
		return err
	}
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	dir := exportCmd.String("dir", ".", "Directory to write the backup file into.")
	if err := exportCmd.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	raw, err := cli.trackSvc.Export(usr, now).Marshal()
	if err != nil {
		return err
	}
	path := filepath.Join(*dir, track.BackupFilename(now))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrap(err, "writing backup file")
	}
	fmt.Fprintf(cli.out, "Backup written to %s\n", path)
	return nil
}

func (cli *commandLine) importBackup(args []string) error {
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	file := importCmd.String("file", "", "The backup file to merge into the store.")
	if err := importCmd.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		importCmd.Usage()
		return errHelp
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return errors.Wrap(err, "reading backup file")
	}
	data, err := track.ParseBackup(raw)
	if err != nil {
		return err
	}
	cli.trackSvc.Import(data)
	fmt.Fprintln(cli.out, "Data restored successfully")
	return nil
}
