package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"classtrack/core"
	"classtrack/core/track"
	"classtrack/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotLoggedIn = errors.New("not logged in; run `login` first")
)

type commandLine struct {
	out      io.Writer
	usrSvc   *user.Service
	trackSvc *track.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -name NAME -program PROGRAM -subject SUBJECT - switch profile (password prompted next)")
	fmt.Fprintln(cli.out, "  logout                                             - clear the current profile")
	fmt.Fprintln(cli.out, "  whoami                                             - show the current profile")
	fmt.Fprintln(cli.out, "  semester add|ls|archive|activate|rename|rm         - manage semesters")
	fmt.Fprintln(cli.out, "  course add|ls|update|rm                            - manage courses")
	fmt.Fprintln(cli.out, "  session add|ls|rm                                  - log class sessions")
	fmt.Fprintln(cli.out, "  stats                                              - overall progress for active semesters")
	fmt.Fprintln(cli.out, "  cgpa NAME:CREDIT:GRADE ...                         - compute a CGPA on the 4.00 scale")
	fmt.Fprintln(cli.out, "  report [-course ID]                                - shareable text report")
	fmt.Fprintln(cli.out, "  export [-dir DIR]                                  - write a backup file")
	fmt.Fprintln(cli.out, "  import -file FILE                                  - merge a backup file into the store")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "semester":
		return cli.semester(args[2:])
	case "course":
		return cli.course(args[2:])
	case "session":
		return cli.session(args[2:])
	case "stats":
		return cli.stats()
	case "cgpa":
		return cli.cgpa(args[2:])
	case "report":
		return cli.report(args[2:])
	case "export":
		return cli.export(args[2:])
	case "import":
		return cli.importBackup(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) currentUser() (user.User, error) {
	usr, ok := cli.usrSvc.Current()
	if !ok {
		return user.User{}, errNotLoggedIn
	}
	return usr, nil
}

// fmtErr flattens a ValidationError into a single user-visible message.
func fmtErr(err error) error {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		msgs := make([]string, 0, len(vErr.Fields))
		for _, fld := range vErr.Fields {
			msgs = append(msgs, fld.Field+": "+fld.Error)
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}
