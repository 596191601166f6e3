package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"todo-sync/feature/todos"

	"github.com/spf13/cobra"
)

var (
	todoTitle       string
	todoDescription string
)

// todosCmd represents the todos command
var todosCmd = &cobra.Command{
	Use:   "todos",
	Short: "List or create todos",
}

// todosListCmd represents the todos list command
var todosListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every todo as JSON, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := todoService()
		if err != nil {
			return err
		}
		defer closeFn()

		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(todos.ListResponse{
			Todos:     list,
			Count:     len(list),
			TableName: svc.TableName(),
			Stage:     svc.Stage(),
		})
	},
}

// todosCreateCmd represents the todos create command
var todosCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a todo, mirroring it to Airtable when configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := todoService()
		if err != nil {
			return err
		}
		defer closeFn()

		todo, err := svc.Create(cmd.Context(), todoTitle, todoDescription)
		if err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}
		return printJSON(todos.CreateResponse{
			Todo:      todo,
			Message:   "Todo created successfully",
			TableName: svc.TableName(),
			Stage:     svc.Stage(),
		})
	},
}

func todoService() (*todos.Service, func(), error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, err
	}
	return todos.NewService(a.engine, a.logger, a.cfg.TableName(), a.cfg.Server.Stage), a.close, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	todosCreateCmd.Flags().StringVar(&todoTitle, "title", "", "Todo title (required)")
	todosCreateCmd.Flags().StringVar(&todoDescription, "description", "", "Todo description")
	_ = todosCreateCmd.MarkFlagRequired("title")

	todosCmd.AddCommand(todosListCmd)
	todosCmd.AddCommand(todosCreateCmd)
	RootCmd.AddCommand(todosCmd)
}
