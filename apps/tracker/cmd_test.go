package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"classtrack/core/track"
	"classtrack/core/user"
	testutil "classtrack/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	kv := testutil.NewKV()
	log := testutil.NewLogger()

	out := &bytes.Buffer{}
	return &commandLine{
		out:      out,
		usrSvc:   user.NewService(kv, log),
		trackSvc: track.NewService(kv, log),
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func login(t *testing.T, cli *commandLine) {
	t.Helper()
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("pw1"), nil }
	args := []string{"tracker", "login", "-name", "Ann", "-program", "BA Honours", "-subject", "History"}
	if err := cli.run(args); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", args: nil, wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "whoami before login", args: []string{"whoami"}, wantErr: errNotLoggedIn},
		{name: "stats before login", args: []string{"stats"}, wantErr: errNotLoggedIn},
		{name: "semester before login", args: []string{"semester", "ls"}, wantErr: errNotLoggedIn},
	}
	for _, tt := range tests {
		args := append([]string{"tracker"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_login(t *testing.T) {
	cli, out := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no flags", args: []string{"login"}, wantErr: errHelp},
		{name: "missing subject", args: []string{"login", "-name", "Ann", "-program", "BA Honours"}, wantErr: errHelp},
		{
			name:       "empty password",
			args:       []string{"login", "-name", "Ann", "-program", "BA Honours", "-subject", "History"},
			extra:      extra{pwd: ""},
			wantErrStr: "password: this field is required",
		},
		{
			name:       "unknown program",
			args:       []string{"login", "-name", "Ann", "-program", "MSc", "-subject", "History"},
			extra:      extra{pwd: "pw1"},
			wantErrStr: "program: unknown program",
		},
		{
			name:       "subject not offered",
			args:       []string{"login", "-name", "Ann", "-program", "BA Honours", "-subject", "Sociology"},
			extra:      extra{pwd: "pw1"},
			wantErrStr: "subject: subject is not offered under the selected program",
		},
		{
			name:  "valid",
			args:  []string{"login", "-name", "Ann", "-program", "BA Honours", "-subject", "History"},
			extra: extra{pwd: "pw1"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"tracker"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			if err == nil {
				if tt.wantErr != nil || tt.wantErrStr != "" {
					t.Fatalf("cli.run() expected error %v%s", tt.wantErr, tt.wantErrStr)
				}
				if !strings.Contains(out.String(), "Logged in as Ann") {
					t.Errorf("unexpected output: %s", out.String())
				}
			} else if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else if err.Error() != tt.wantErrStr {
				t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
			}
		})
	}
}

func Test_commandLine_cgpa(t *testing.T) {
	cli, out := setup(t)

	tests := []cliTest{
		{name: "no args", args: []string{"cgpa"}, wantErr: errHelp},
		{name: "malformed row", args: []string{"cgpa", "Bangla"}, wantErrStr: `"Bangla": want NAME:CREDIT:GRADE`},
		{name: "bad credit", args: []string{"cgpa", "Bangla:x:A+"}, wantErrStr: `"Bangla:x:A+": credit must be a number`},
		{name: "unknown grade", args: []string{"cgpa", "Bangla:3:E"}, wantErrStr: `"Bangla:3:E": unknown grade "E" (one of A+ A A- B+ B B- C+ C D F)`},
		{name: "valid", args: []string{"cgpa", "Bangla:4:A+", "History:2:B"}},
	}
	for _, tt := range tests {
		args := append([]string{"tracker"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case err == nil && (tt.wantErr != nil || tt.wantErrStr != ""):
				t.Errorf("cli.run() expected error %v%s", tt.wantErr, tt.wantErrStr)
			case err != nil && tt.wantErr != nil && err != tt.wantErr:
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			case err != nil && tt.wantErr == nil && err.Error() != tt.wantErrStr:
				t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
			case err == nil && !strings.Contains(out.String(), "CGPA: 3.67 over 6 credits"):
				t.Errorf("unexpected output: %s", out.String())
			}
		})
	}
}

func Test_commandLine_whoamiLogout(t *testing.T) {
	cli, out := setup(t)
	login(t, cli)

	out.Reset()
	if err := cli.run([]string{"tracker", "whoami"}); err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out.String(), "Name: Ann") {
		t.Errorf("unexpected whoami output: %s", out.String())
	}

	if err := cli.run([]string{"tracker", "logout"}); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := cli.run([]string{"tracker", "whoami"}); err != errNotLoggedIn {
		t.Errorf("whoami after logout error = %v, want %v", err, errNotLoggedIn)
	}
}

func Test_commandLine_semesterFlow(t *testing.T) {
	cli, out := setup(t)
	login(t, cli)

	tests := []cliTest{
		{name: "no subcommand", args: []string{"semester"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"semester", "lol"}, wantErr: errHelp},
		{name: "add without name", args: []string{"semester", "add"}, wantErr: errHelp},
		{name: "add", args: []string{"semester", "add", "-name", "1st Semester"}},
		{name: "ls", args: []string{"semester", "ls"}},
		{name: "rm without id", args: []string{"semester", "rm"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"tracker"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	sems := cli.trackSvc.Semesters()
	if len(sems) != 1 || sems[0].Name != "1st Semester" {
		t.Fatalf("unexpected semesters after flow: %+v", sems)
	}
	if !strings.Contains(out.String(), "1st Semester") {
		t.Errorf("ls output missing the semester: %s", out.String())
	}

	id := sems[0].ID
	if err := cli.run([]string{"tracker", "semester", "archive", "-id", id}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if got := cli.trackSvc.Semesters()[0].Status; got != track.StatusArchived {
		t.Errorf("status = %q, want %q", got, track.StatusArchived)
	}
	if err := cli.run([]string{"tracker", "semester", "rename", "-id", id, "-name", "Fall 2024"}); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if got := cli.trackSvc.Semesters()[0].Name; got != "Fall 2024" {
		t.Errorf("name = %q, want %q", got, "Fall 2024")
	}
	if err := cli.run([]string{"tracker", "semester", "rm", "-id", id}); err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if got := cli.trackSvc.Semesters(); len(got) != 0 {
		t.Errorf("semesters after rm: %+v", got)
	}
}

func Test_commandLine_courseAndSessionFlow(t *testing.T) {
	cli, out := setup(t)
	login(t, cli)

	if err := cli.run([]string{"tracker", "semester", "add", "-name", "1st Semester"}); err != nil {
		t.Fatalf("semester add failed: %v", err)
	}
	semID := cli.trackSvc.Semesters()[0].ID

	tests := []cliTest{
		{name: "add without teacher", args: []string{"course", "add", "-semester", semID, "-name", "Bangla"}, wantErrStr: "teacherName: this field is required"},
		{name: "add", args: []string{"course", "add", "-semester", semID, "-name", "Bangla", "-teacher", "Dr. Rahim"}},
	}
	for _, tt := range tests {
		args := append([]string{"tracker"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case err == nil && tt.wantErrStr != "":
				t.Errorf("cli.run() expected error %s", tt.wantErrStr)
			case err != nil && err.Error() != tt.wantErrStr:
				t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
			}
		})
	}

	courses := cli.trackSvc.Courses()
	if len(courses) != 1 {
		t.Fatalf("unexpected courses: %+v", courses)
	}
	course := courses[0]
	if course.TotalClasses != track.DefaultTotalClasses {
		t.Errorf("total classes = %d, want default %d", course.TotalClasses, track.DefaultTotalClasses)
	}

	if err := cli.run([]string{"tracker", "session", "add", "-course", course.ID, "-date", "2024-05-02", "-type", "DRC", "-note", "chapter 1"}); err != nil {
		t.Fatalf("session add failed: %v", err)
	}
	if err := cli.run([]string{"tracker", "session", "add", "-course", course.ID, "-date", "2024-05-03", "-type", "Offline"}); err == nil {
		t.Error("expected a validation error for an unknown session type")
	}

	out.Reset()
	if err := cli.run([]string{"tracker", "stats"}); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out.String(), "Classes done: 1") || !strings.Contains(out.String(), "Progress:     4%") {
		t.Errorf("unexpected stats output: %s", out.String())
	}

	out.Reset()
	if err := cli.run([]string{"tracker", "report", "-course", course.ID}); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out.String(), "Course Report: Bangla") || !strings.Contains(out.String(), "chapter 1") {
		t.Errorf("unexpected report output: %s", out.String())
	}
}

func Test_commandLine_exportImport(t *testing.T) {
	cli, _ := setup(t)
	login(t, cli)

	if err := cli.run([]string{"tracker", "semester", "add", "-name", "1st Semester"}); err != nil {
		t.Fatalf("semester add failed: %v", err)
	}

	dir := t.TempDir()
	if err := cli.run([]string{"tracker", "export", "-dir", dir}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one backup file, got %v (%v)", entries, err)
	}
	file := filepath.Join(dir, entries[0].Name())
	if !strings.HasPrefix(entries[0].Name(), "honours-tracker-backup-") {
		t.Errorf("unexpected backup filename %q", entries[0].Name())
	}

	// a fresh store picks the data back up after import
	fresh, freshOut := setup(t)
	login(t, fresh)
	if err := fresh.run([]string{"tracker", "import", "-file", file}); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(freshOut.String(), "Data restored successfully") {
		t.Errorf("unexpected import output: %s", freshOut.String())
	}
	if got := fresh.trackSvc.Semesters(); len(got) != 1 || got[0].Name != "1st Semester" {
		t.Errorf("semesters after import: %+v", got)
	}

	if err := cli.run([]string{"tracker", "import"}); err != errHelp {
		t.Errorf("import without -file error = %v, want %v", err, errHelp)
	}
}
