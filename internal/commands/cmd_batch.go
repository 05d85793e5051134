package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tudu/internal/core/logging"
	"github.com/colonyops/tudu/internal/core/task"
	"github.com/colonyops/tudu/internal/core/validate"
	"github.com/colonyops/tudu/pkg/iojson"
)

// Batch operation names.
const (
	OpAdd    = "add"
	OpToggle = "toggle"
	OpDelete = "delete"
)

type BatchCmd struct {
	flags  *Flags
	fr     *iojson.FileReader[BatchInput]
	noSeed bool
}

func NewBatchCmd(flags *Flags) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		fr:    &iojson.FileReader[BatchInput]{},
	}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Apply task operations from JSON input",
		UsageText: `tudu batch [options]

Read from stdin:
  echo '{"ops":[{"op":"add","name":"Buy milk"},{"op":"toggle","index":1}]}' | tudu batch

Read from file:
  tudu batch -f ops.json`,
		Description: `Applies a script of task operations to a fresh list and prints the result.

The list starts with the same sample task as the interactive UI unless
--no-seed is set. Operations run in order and positions refer to the list as
it is when the operation runs.

Input JSON schema:
  {
    "ops": [
      {"op": "add", "name": "task name"},
      {"op": "toggle", "index": 0},
      {"op": "delete", "indexes": [0, 2]}
    ]
  }

Operations:
  add    - Appends a task. name is required.
  toggle - Flips completion of the task at index.
  delete - Removes the tasks at indexes in one step.

Out of range positions are ignored. Output is JSON with a result per
operation and the final task list.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.BoolFlag{
				Name:        "no-seed",
				Usage:       "start from an empty list instead of the sample task",
				Destination: &cmd.noSeed,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BatchCmd) run(_ context.Context, c *cli.Command) error {
	logger := logging.Component("batch")
	errw := c.Root().ErrWriter

	input, err := cmd.fr.Read()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return iojson.WriteErrorTo(errw, fmt.Sprintf("read input: %s", err), nil)
	}

	if err := input.Validate(); err != nil {
		logger.Error().Err(err).Msg("input validation failed")
		return iojson.WriteErrorTo(errw, fmt.Sprintf("invalid input: %s", err), nil)
	}

	store := task.NewStore()
	if cmd.noSeed {
		store.DeleteAt(0)
	}

	output := Apply(store, input)
	logger.Info().
		Int("ops", len(input.Ops)).
		Int("tasks", len(output.Tasks)).
		Msg("batch applied")

	return iojson.WriteWith(c.Root().Writer, errw, output)
}

// BatchInput is the JSON input schema for batch task operations.
type BatchInput struct {
	Ops []BatchOp `json:"ops"`
}

// BatchOp is a single task operation.
type BatchOp struct {
	Op      string `json:"op"`
	Name    string `json:"name,omitempty"`
	Index   *int   `json:"index,omitempty"`
	Indexes []int  `json:"indexes,omitempty"`
}

// Validate checks the batch input for errors using criterio.
func (b BatchInput) Validate() error {
	if len(b.Ops) == 0 {
		return criterio.NewFieldErrors("ops", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder
	for i, op := range b.Ops {
		field := fmt.Sprintf("ops[%d]", i)

		switch op.Op {
		case OpAdd:
			if err := validate.TaskName(op.Name); err != nil {
				errs = errs.Append(field+".name", err)
			}
		case OpToggle:
			if op.Index == nil {
				errs = errs.Append(field+".index", fmt.Errorf("required for %s", OpToggle))
			} else if *op.Index < 0 {
				errs = errs.Append(field+".index", fmt.Errorf("must not be negative"))
			}
		case OpDelete:
			if len(op.Indexes) == 0 {
				errs = errs.Append(field+".indexes", fmt.Errorf("required for %s", OpDelete))
			}
			for j, idx := range op.Indexes {
				if idx < 0 {
					errs = errs.Append(fmt.Sprintf("%s.indexes[%d]", field, j), fmt.Errorf("must not be negative"))
				}
			}
		default:
			errs = errs.Append(field+".op", fmt.Errorf("unknown op %q (expected %s, %s or %s)", op.Op, OpAdd, OpToggle, OpDelete))
		}
	}

	return errs.ToError()
}

// BatchResult reports what a single operation changed.
type BatchResult struct {
	Op      string `json:"op"`
	Applied bool   `json:"applied"`
	Removed int    `json:"removed,omitempty"`
}

// BatchOutput is the JSON output of the batch command.
type BatchOutput struct {
	Results []BatchResult `json:"results"`
	Tasks   []task.Task   `json:"tasks"`
}

// Apply runs the validated operations against store in order.
func Apply(store *task.Store, input BatchInput) BatchOutput {
	output := BatchOutput{Results: make([]BatchResult, 0, len(input.Ops))}

	for _, op := range input.Ops {
		result := BatchResult{Op: op.Op}

		switch op.Op {
		case OpAdd:
			result.Applied = store.Add(op.Name)
		case OpToggle:
			tasks := store.List()
			if op.Index != nil && *op.Index < len(tasks) {
				result.Applied = store.Toggle(tasks[*op.Index].ID)
			}
		case OpDelete:
			result.Removed = store.DeleteAt(op.Indexes...)
			result.Applied = result.Removed > 0
		}

		output.Results = append(output.Results, result)
	}

	output.Tasks = store.List()
	return output
}
