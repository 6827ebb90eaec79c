package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// fail prints a short description of err and returns it.
func (a *App) fail(what string, err error) error {
	fmt.Fprintf(a.out, "%s: %s\n", what, status.Convert(err).Message())
	return err
}

func mark(complete bool) string {
	if complete {
		return "[x]"
	}
	return "[ ]"
}

// List prints the caller's todos.
func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.ListTodos(ctx, &pb.ListTodosRequest{})
	if err != nil {
		return a.fail("List", err)
	}
	if len(resp.GetTodos()) == 0 {
		fmt.Fprintln(a.out, "No todos")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, t := range resp.GetTodos() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark(t.GetComplete()), t.GetId(), t.GetName())
	}
	return tw.Flush()
}

// Show prints a single todo.
func (a *App) Show(ctx context.Context, id string) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.GetTodo(ctx, &pb.GetTodoRequest{Id: id})
	if err != nil {
		return a.fail("Show", err)
	}

	t := resp.GetTodo()
	fmt.Fprintf(a.out, "%s %s\n%s\n", mark(t.GetComplete()), t.GetName(), t.GetDescription())
	return nil
}

// Add prompts for a name and description and creates a todo.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.CreateTodo(ctx, &pb.CreateTodoRequest{Name: name, Description: description})
	if err != nil {
		return a.fail("Add", err)
	}

	fmt.Fprintf(a.out, "Added %s\n", resp.GetTodo().GetId())
	return nil
}

// Done marks a todo complete.
func (a *App) Done(ctx context.Context, id string) error {
	return a.patch(ctx, "Done", &pb.UpdateTodoRequest{Id: id, Complete: proto.Bool(true)})
}

// Rename prompts for a new name.
func (a *App) Rename(ctx context.Context, id string) error {
	name, err := getSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	return a.patch(ctx, "Rename", &pb.UpdateTodoRequest{Id: id, Name: proto.String(name)})
}

// patch sends only the fields set in req.
func (a *App) patch(ctx context.Context, what string, req *pb.UpdateTodoRequest) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if _, err := a.api.UpdateTodo(ctx, req); err != nil {
		return a.fail(what, err)
	}

	fmt.Fprintln(a.out, "OK")
	return nil
}

// Delete removes a todo.
func (a *App) Delete(ctx context.Context, id string) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if _, err := a.api.DeleteTodo(ctx, &pb.DeleteTodoRequest{Id: id}); err != nil {
		return a.fail("Delete", err)
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
