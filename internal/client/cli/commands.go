package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readPassword() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer clear(pw)
	return string(pw), nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}

	id, err := a.authService.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered, user id %s. Use 'login' to sign in.\n", id)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}

	s, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	p, err := a.taskService.Profile(ctx)
	if err != nil {
		return a.sessionError(err)
	}
	fmt.Fprintf(a.out, "%s <%s>, id %s, %d task(s)\n", p.Username, p.Email, p.ID, len(p.Tasks))
	return nil
}

func (a *App) Create(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Task name", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status (empty for Pending)", a.out)
	if err != nil {
		return err
	}

	t, err := a.taskService.Create(ctx, name, status)
	if err != nil {
		return a.sessionError(err)
	}
	a.printTasks([]client.Task{*t})
	return nil
}

func (a *App) Update(ctx context.Context, taskID string) error {
	name, err := getSimpleText(a.reader, "New task name", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "New status", a.out)
	if err != nil {
		return err
	}

	t, err := a.taskService.Update(ctx, taskID, name, status)
	if err != nil {
		return a.sessionError(err)
	}
	a.printTasks([]client.Task{*t})
	return nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.taskService.List(ctx)
	if err != nil {
		return a.sessionError(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}
	a.printTasks(list)
	return nil
}

func (a *App) printTasks(list []client.Task) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS")
	for _, t := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.TaskName, t.Status)
	}
	_ = tw.Flush()
}

// sessionError adds a hint when the server rejected the stored token.
func (a *App) sessionError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) && a.session != nil {
		return fmt.Errorf("%w (if your session has expired, run 'login' again)", err)
	}
	return err
}
