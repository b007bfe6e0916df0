package main

import (
	"flag"
	"fmt"

	"classtrack/core/track"
)

func (cli *commandLine) printCourseUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  course add -semester ID -name NAME -teacher NAME [-total N]")
	fmt.Fprintln(cli.out, "  course ls [-semester ID]")
	fmt.Fprintln(cli.out, "  course update -id ID [-name NAME] [-teacher NAME] [-total N]")
	fmt.Fprintln(cli.out, "  course rm -id ID")
}

func (cli *commandLine) course(args []string) error {
	if len(args) == 0 {
		cli.printCourseUsage()
		return errHelp
	}
	if _, err := cli.currentUser(); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		addCmd := flag.NewFlagSet("course add", flag.ExitOnError)
		semesterID := addCmd.String("semester", "", "The owning semester id.")
		name := addCmd.String("name", "", "The course name.")
		teacher := addCmd.String("teacher", "", "The teacher's name.")
		total := addCmd.Int("total", track.DefaultTotalClasses, "Expected number of classes.")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		course, err := cli.trackSvc.AddCourse(track.NewCourse{
			SemesterID:   *semesterID,
			Name:         *name,
			TeacherName:  *teacher,
			TotalClasses: *total,
		})
		if err != nil {
			return fmtErr(err)
		}
		fmt.Fprintf(cli.out, "Added course %q (id %s)\n", course.Name, course.ID)
		return nil

	case "ls":
		lsCmd := flag.NewFlagSet("course ls", flag.ExitOnError)
		semesterID := lsCmd.String("semester", "", "Only list this semester's courses.")
		if err := lsCmd.Parse(args[1:]); err != nil {
			return err
		}
		for _, c := range cli.trackSvc.Courses() {
			if *semesterID != "" && c.SemesterID != *semesterID {
				continue
			}
			done := cli.trackSvc.CourseCompleted(c.ID)
			fmt.Fprintf(cli.out, "%s  %s (%s) %d/%d %d%%\n",
				c.ID, c.Name, c.TeacherName, done, c.TotalClasses, cli.trackSvc.CoursePercent(c))
		}
		return nil

	case "update":
		updCmd := flag.NewFlagSet("course update", flag.ExitOnError)
		id := updCmd.String("id", "", "The course id.")
		name := updCmd.String("name", "", "The new course name.")
		teacher := updCmd.String("teacher", "", "The new teacher's name.")
		total := updCmd.Int("total", 0, "The new expected number of classes.")
		if err := updCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			updCmd.Usage()
			return errHelp
		}
		uc := track.UpdateCourse{Name: *name, TeacherName: *teacher}
		if *total > 0 {
			uc.TotalClasses = total
		}
		if err := cli.trackSvc.UpdateCourse(*id, uc); err != nil {
			return fmtErr(err)
		}
		return nil

	case "rm":
		rmCmd := flag.NewFlagSet("course rm", flag.ExitOnError)
		id := rmCmd.String("id", "", "The course id.")
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			rmCmd.Usage()
			return errHelp
		}
		cli.trackSvc.DeleteCourse(*id)
		return nil

	default:
		cli.printCourseUsage()
		return errHelp
	}
}
