package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
)

// AddTask prompts for the task fields and creates the task. Only the title
// is mandatory; everything else falls back to server defaults.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, "Due date YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return err
	}
	priority, err := getSimpleText(a.reader, "Priority low/medium/high (optional)", a.out)
	if err != nil {
		return err
	}

	task, err := a.api.CreateTask(ctx, a.session, api.Draft{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created %s\n", task.ID)
	return nil
}

// ListTasks fetches the task list and prints it. args follow the REPL
// syntax: list [pending|completed] [due|priority|title].
func (a *App) ListTasks(ctx context.Context, args []string) error {
	status := ""
	sortKey := ""

	for _, arg := range args {
		switch arg {
		case "pending", "completed":
			status = arg
		case "due", "priority", "title":
			sortKey = arg
		default:
			fmt.Fprintf(a.out, "Unknown argument: %s\n", arg)
			return nil
		}
	}

	list, err := a.api.ListTasks(ctx, a.session, status)
	if err != nil {
		return err
	}

	if sortKey != "" {
		sortTasks(list, sortKey)
	}

	printTasks(a.out, list)
	return nil
}

// SearchTasks fetches everything and filters locally on a case-insensitive
// substring of title and description.
func (a *App) SearchTasks(ctx context.Context, query string) error {
	list, err := a.api.ListTasks(ctx, a.session, "")
	if err != nil {
		return err
	}

	printTasks(a.out, filterTasks(list, query))
	return nil
}

// CompleteTask toggles a task to completed.
func (a *App) CompleteTask(ctx context.Context, id string) error {
	status := "completed"
	task, err := a.api.UpdateTask(ctx, a.session, id, api.Patch{Status: &status})
	if err != nil {
		return err
	}
	if task == nil {
		fmt.Fprintln(a.out, "No such task")
		return nil
	}

	fmt.Fprintf(a.out, "Completed %s\n", task.ID)
	return nil
}

// UpdateTask prompts for new field values; empty answers leave the field
// unchanged.
func (a *App) UpdateTask(ctx context.Context, id string) error {
	patch := api.Patch{}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}

	dueDate, err := getSimpleText(a.reader, "New due date YYYY-MM-DD (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if dueDate != "" {
		patch.DueDate = &dueDate
	}

	priority, err := getSimpleText(a.reader, "New priority low/medium/high (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if priority != "" {
		patch.Priority = &priority
	}

	task, err := a.api.UpdateTask(ctx, a.session, id, patch)
	if err != nil {
		return err
	}
	if task == nil {
		fmt.Fprintln(a.out, "No such task")
		return nil
	}

	fmt.Fprintf(a.out, "Updated %s\n", task.ID)
	return nil
}

// DeleteTask removes a task. The server treats delete as idempotent, so
// deleting an already-gone id also reports success.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	if err := a.api.DeleteTask(ctx, a.session, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
