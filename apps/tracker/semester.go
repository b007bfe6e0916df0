package main

import (
	"flag"
	"fmt"
	"time"

	"classtrack/core/track"
)

func (cli *commandLine) printSemesterUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  semester add -name NAME      - create an active semester")
	fmt.Fprintln(cli.out, "  semester ls                  - list semesters")
	fmt.Fprintln(cli.out, "  semester archive -id ID      - archive a semester")
	fmt.Fprintln(cli.out, "  semester activate -id ID     - re-activate a semester")
	fmt.Fprintln(cli.out, "  semester rename -id ID -name NAME")
	fmt.Fprintln(cli.out, "  semester rm -id ID           - delete a semester and everything in it")
}

func (cli *commandLine) semester(args []string) error {
	if len(args) == 0 {
		cli.printSemesterUsage()
		return errHelp
	}
	if _, err := cli.currentUser(); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		addCmd := flag.NewFlagSet("semester add", flag.ExitOnError)
		name := addCmd.String("name", "", `Semester name, e.g. "1st Semester".`)
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" {
			addCmd.Usage()
			return errHelp
		}
		sem := cli.trackSvc.AddSemester(*name)
		fmt.Fprintf(cli.out, "Added semester %q (id %s)\n", sem.Name, sem.ID)
		return nil

	case "ls":
		for _, sem := range cli.trackSvc.Semesters() {
			created := time.UnixMilli(sem.CreatedAt).Format("02-01-2006")
			fmt.Fprintf(cli.out, "%s  %-14s %-8s created %s\n", sem.ID, sem.Name, sem.Status, created)
		}
		return nil

	case "archive", "activate":
		status := track.StatusArchived
		if args[0] == "activate" {
			status = track.StatusActive
		}
		statusCmd := flag.NewFlagSet("semester "+args[0], flag.ExitOnError)
		id := statusCmd.String("id", "", "The semester id.")
		if err := statusCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			statusCmd.Usage()
			return errHelp
		}
		cli.trackSvc.UpdateSemesterStatus(*id, status)
		return nil

	case "rename":
		renameCmd := flag.NewFlagSet("semester rename", flag.ExitOnError)
		id := renameCmd.String("id", "", "The semester id.")
		name := renameCmd.String("name", "", "The new name.")
		if err := renameCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" || *name == "" {
			renameCmd.Usage()
			return errHelp
		}
		cli.trackSvc.UpdateSemesterName(*id, *name)
		return nil

	case "rm":
		rmCmd := flag.NewFlagSet("semester rm", flag.ExitOnError)
		id := rmCmd.String("id", "", "The semester id.")
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			rmCmd.Usage()
			return errHelp
		}
		cli.trackSvc.DeleteSemester(*id)
		return nil

	default:
		cli.printSemesterUsage()
		return errHelp
	}
}
