package main

import (
	"flag"
	"fmt"

	"classtrack/core/track"
)

func (cli *commandLine) printSessionUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  session add -course ID -date YYYY-MM-DD -type Online|DRC [-note TEXT]")
	fmt.Fprintln(cli.out, "  session ls -course ID")
	fmt.Fprintln(cli.out, "  session rm -id ID")
}

func (cli *commandLine) session(args []string) error {
	if len(args) == 0 {
		cli.printSessionUsage()
		return errHelp
	}
	if _, err := cli.currentUser(); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		addCmd := flag.NewFlagSet("session add", flag.ExitOnError)
		courseID := addCmd.String("course", "", "The owning course id.")
		date := addCmd.String("date", "", "The class date, YYYY-MM-DD.")
		typ := addCmd.String("type", "", "The delivery mode: Online or DRC.")
		note := addCmd.String("note", "", "An optional note.")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		session, err := cli.trackSvc.AddSession(track.NewSession{
			CourseID: *courseID,
			Date:     *date,
			Type:     track.SessionType(*typ),
			Note:     *note,
		})
		if err != nil {
			return fmtErr(err)
		}
		fmt.Fprintf(cli.out, "Logged %s class on %s (id %s)\n", session.Type, session.Date, session.ID)
		return nil

	case "ls":
		lsCmd := flag.NewFlagSet("session ls", flag.ExitOnError)
		courseID := lsCmd.String("course", "", "The course id.")
		if err := lsCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *courseID == "" {
			lsCmd.Usage()
			return errHelp
		}
		for _, s := range cli.trackSvc.CourseSessions(*courseID) {
			fmt.Fprintf(cli.out, "%s  %s %-6s %s\n", s.ID, s.Date, s.Type, s.Note)
		}
		return nil

	case "rm":
		rmCmd := flag.NewFlagSet("session rm", flag.ExitOnError)
		id := rmCmd.String("id", "", "The session id.")
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			rmCmd.Usage()
			return errHelp
		}
		cli.trackSvc.DeleteSession(*id)
		return nil

	default:
		cli.printSessionUsage()
		return errHelp
	}
}
