package main

import (
	"flag"
	"fmt"
	"syscall"

	"classtrack/core/user"
)

func (cli *commandLine) login(args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	name := loginCmd.String("name", "", "Your display name.")
	program := loginCmd.String("program", "", `Program label, e.g. "BA Honours".`)
	subject := loginCmd.String("subject", "", `Subject label, e.g. "History".`)
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *name == "" || *program == "" || *subject == "" {
		loginCmd.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}

	usr, err := cli.usrSvc.Login(user.Login{
		Name:     *name,
		Password: string(pwd),
		Program:  user.Program(*program),
		Subject:  user.Subject(*subject),
	})
	if err != nil {
		return fmtErr(err)
	}
	cli.trackSvc.SetUser(usr)
	fmt.Fprintf(cli.out, "Logged in as %s (%s, %s)\n", usr.Name, usr.Program, usr.Subject)
	return nil
}

func (cli *commandLine) logout() error {
	cli.usrSvc.Logout()
	cli.trackSvc.ClearUser()
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	usr, err := cli.currentUser()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Name: %s\nProgram: %s\nSubject: %s\n", usr.Name, usr.Program, usr.Subject)
	return nil
}
