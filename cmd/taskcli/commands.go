package main

import (
	"context"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/taskpilot/client/api/transport"
	"github.com/taskpilot/client/domain"
	"github.com/taskpilot/client/internal/validate"
	"github.com/taskpilot/client/pkg/token"
)

// requireAuth is the CLI's routing guard: protected commands bail out
// unless the session controller says we are authenticated.
func (a *app) requireAuth() bool {
	if a.session.State().IsAuthenticated {
		return true
	}
	fmt.Fprintln(a.errOut, "Not logged in. Run 'taskcli login' first.")
	return false
}

// reportValidation prints inline field errors and reports whether any
// were found. Validation never reaches the network.
func (a *app) reportValidation(messages ...string) bool {
	failed := false
	for _, msg := range messages {
		if msg != "" {
			fmt.Fprintln(a.errOut, msg)
			failed = true
		}
	}
	return failed
}

func (a *app) cmdRegister(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 8 characters)")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if a.reportValidation(validate.Email(*email), validate.Password(*password)) {
		return 1
	}

	err := a.session.Register(ctx, transport.RegisterRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Registration failed"))
		return 1
	}

	fmt.Fprintf(a.out, "Registered %s. You can now log in.\n", *email)
	return 0
}

func (a *app) cmdLogin(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if a.reportValidation(validate.Email(*email), validate.Password(*password)) {
		return 1
	}

	if err := a.session.Login(ctx, transport.LoginRequest{Email: *email, Password: *password}); err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Login failed"))
		return 1
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.State().User.DisplayName())
	return 0
}

func (a *app) cmdLogout(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(a.errOut, "logout takes no arguments")
		return 2
	}
	a.session.Logout()
	return 0
}

func (a *app) cmdWhoami(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(a.errOut, "whoami takes no arguments")
		return 2
	}
	if !a.requireAuth() {
		return 1
	}

	user := a.session.State().User
	fmt.Fprintf(a.out, "%s <%s>\n", user.DisplayName(), user.Email)
	fmt.Fprintf(a.out, "id: %s\n", user.ID)

	if raw := a.store.GetAccessToken(); raw != "" {
		if expiry, err := token.Expiry(raw); err == nil {
			fmt.Fprintf(a.out, "session expires: %s\n", expiry.Local().Format(time.RFC1123))
		}
	}
	return 0
}

func (a *app) cmdList(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	status := fs.String("status", transport.FilterAll, "all, pending or completed")
	sortBy := fs.String("sort-by", "", "createdAt, updatedAt or title")
	sortOrder := fs.String("sort-order", "", "asc or desc")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !a.requireAuth() {
		return 1
	}

	resp, err := a.tasks.List(ctx, transport.TaskFilter{
		Status:    *status,
		SortBy:    *sortBy,
		SortOrder: *sortOrder,
	})
	if err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Failed to load tasks"))
		return 1
	}

	for i := range resp.Tasks {
		a.printTaskLine(&resp.Tasks[i])
	}
	fmt.Fprintf(a.out, "%d task(s)\n", resp.Total)
	return 0
}

func (a *app) cmdShow(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: taskcli show <id>")
		return 2
	}
	if !a.requireAuth() {
		return 1
	}

	task, err := a.tasks.Get(ctx, args[0])
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			fmt.Fprintln(a.errOut, "Task not found.")
		} else {
			fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Failed to load task"))
		}
		return 1
	}

	fmt.Fprintf(a.out, "%s\n", task.Title)
	fmt.Fprintf(a.out, "id: %s\n", task.ID)
	fmt.Fprintf(a.out, "status: %s\n", task.Status)
	if task.Description != "" {
		fmt.Fprintf(a.out, "description: %s\n", task.Description)
	}
	fmt.Fprintf(a.out, "created: %s\n", task.CreatedAt.Local().Format(time.RFC1123))
	fmt.Fprintf(a.out, "updated: %s\n", task.UpdatedAt.Local().Format(time.RFC1123))
	if task.CompletedAt != nil {
		fmt.Fprintf(a.out, "completed: %s\n", task.CompletedAt.Local().Format(time.RFC1123))
	}
	return 0
}

func (a *app) cmdAdd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "task title (max 200 characters)")
	description := fs.String("description", "", "task description (max 1000 characters)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if a.reportValidation(validate.Title(*title), validate.Description(*description)) {
		return 1
	}
	if !a.requireAuth() {
		return 1
	}

	task, err := a.tasks.Create(ctx, transport.CreateTaskRequest{
		Title:       *title,
		Description: *description,
	})
	if err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Failed to create task"))
		return 1
	}

	fmt.Fprintf(a.out, "Created task %s\n", task.ID)
	return 0
}

func (a *app) cmdUpdate(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	status := fs.String("status", "", "pending or completed")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.errOut, "usage: taskcli update <id> [flags]")
		return 2
	}

	// only flags the user actually set make it into the partial update
	var req transport.UpdateTaskRequest
	var messages []string
	if fs.Changed("title") {
		messages = append(messages, validate.Title(*title))
		req.Title = title
	}
	if fs.Changed("description") {
		messages = append(messages, validate.Description(*description))
		req.Description = description
	}
	if fs.Changed("status") {
		if *status != domain.StatusPending && *status != domain.StatusCompleted {
			messages = append(messages, "Status must be pending or completed")
		}
		req.Status = status
	}
	if a.reportValidation(messages...) {
		return 1
	}
	if req.Title == nil && req.Description == nil && req.Status == nil {
		fmt.Fprintln(a.errOut, "nothing to update")
		return 2
	}
	if !a.requireAuth() {
		return 1
	}

	task, err := a.tasks.Update(ctx, fs.Arg(0), req)
	if err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Failed to update task"))
		return 1
	}

	fmt.Fprintf(a.out, "Updated task %s\n", task.ID)
	return 0
}

func (a *app) cmdDone(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: taskcli done <id>")
		return 2
	}
	if !a.requireAuth() {
		return 1
	}

	task, err := a.tasks.Toggle(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Failed to toggle task"))
		return 1
	}

	a.printTaskLine(task)
	return 0
}

func (a *app) cmdRm(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: taskcli rm <id>")
		return 2
	}
	if !a.requireAuth() {
		return 1
	}

	if err := a.tasks.Delete(ctx, args[0]); err != nil {
		fmt.Fprintln(a.errOut, domain.ErrorMessage(err, "Failed to delete task"))
		return 1
	}

	fmt.Fprintf(a.out, "Deleted task %s\n", args[0])
	return 0
}

func (a *app) printTaskLine(task *domain.Task) {
	mark := " "
	if task.IsCompleted() {
		mark = "x"
	}
	fmt.Fprintf(a.out, "[%s] %s  %s\n", mark, task.ID, task.Title)
}
