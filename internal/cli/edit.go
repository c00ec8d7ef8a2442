package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/spatial"
	"github.com/matzehuels/floorplan/pkg/tools"
)

// editCommand groups the structural edits. Every subcommand prints the
// rewritten document unless --write or --output is given.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply a structural edit to a document",
		Long: `Apply a structural edit to a floorplan document.

Edits touch only the text they change, so comments, blank lines and
formatting elsewhere are kept. The result is printed to stdout unless
--write (in place) or --output is given.`,
	}

	cmd.AddCommand(c.editMoveCommand())
	cmd.AddCommand(c.editResizeCommand())
	cmd.AddCommand(c.editRenameCommand())
	cmd.AddCommand(c.editAddCommand())
	cmd.AddCommand(c.editRemoveCommand())
	cmd.AddCommand(c.editWallsCommand())
	cmd.AddCommand(c.editLabelCommand())
	cmd.AddCommand(c.editPlaceCommand())
	cmd.AddCommand(c.editUnpositionCommand())
	cmd.AddCommand(c.editPlanCommand())
	return cmd
}

// editAction runs one toolkit action on the document at path.
type editAction func(tk *tools.Toolkit, src string) (*tools.Result, error)

func (c *CLI) runEdit(path string, out output, action editAction) error {
	src, err := c.readSource(path)
	if err != nil {
		return err
	}
	res, err := action(c.toolkit(), src)
	if err != nil {
		return err
	}
	return c.report(res, out, path)
}

// simpleEdit builds a subcommand taking exactly n arguments after the file.
func (c *CLI) simpleEdit(use, short string, n int, build func(args []string) (editAction, error)) *cobra.Command {
	var out output
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n + 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := build(args[1:])
			if err != nil {
				return err
			}
			return c.runEdit(args[0], out, action)
		},
	}
	out.register(cmd)
	return cmd
}

func (c *CLI) editMoveCommand() *cobra.Command {
	return c.simpleEdit("move [file] [room] [x] [y]", "Set a room's absolute position", 3, func(args []string) (editAction, error) {
		x, err := parseNumber("x", args[1])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber("y", args[2])
		if err != nil {
			return nil, err
		}
		return func(tk *tools.Toolkit, src string) (*tools.Result, error) {
			return tk.MoveRoom(src, args[0], x, y)
		}, nil
	})
}

func (c *CLI) editResizeCommand() *cobra.Command {
	return c.simpleEdit("resize [file] [room] [WxH]", "Set a room's size", 2, func(args []string) (editAction, error) {
		size, err := parseDims(args[1])
		if err != nil {
			return nil, err
		}
		return func(tk *tools.Toolkit, src string) (*tools.Result, error) {
			return tk.ResizeRoom(src, args[0], size.Width, size.Height)
		}, nil
	})
}

func (c *CLI) editRenameCommand() *cobra.Command {
	return c.simpleEdit("rename [file] [room] [new-name]", "Rename a room and every reference to it", 2, func(args []string) (editAction, error) {
		return func(tk *tools.Toolkit, src string) (*tools.Result, error) {
			return tk.RenameRoom(src, args[0], args[1])
		}, nil
	})
}

func (c *CLI) editRemoveCommand() *cobra.Command {
	return c.simpleEdit("remove [file] [room]", "Delete a room", 1, func(args []string) (editAction, error) {
		return func(tk *tools.Toolkit, src string) (*tools.Result, error) {
			return tk.RemoveRoom(src, args[0])
		}, nil
	})
}

func (c *CLI) editWallsCommand() *cobra.Command {
	var out output
	cmd := &cobra.Command{
		Use:   "walls [file] [room] [side=type]...",
		Short: "Set wall types, e.g. top=door left=window",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			walls, err := parseWalls(args[2:])
			if err != nil {
				return err
			}
			return c.runEdit(args[0], out, func(tk *tools.Toolkit, src string) (*tools.Result, error) {
				return tk.UpdateWalls(src, args[1], walls)
			})
		},
	}
	out.register(cmd)
	return cmd
}

func (c *CLI) editLabelCommand() *cobra.Command {
	return c.simpleEdit("label [file] [room] [text]", "Set a room's label", 2, func(args []string) (editAction, error) {
		return func(tk *tools.Toolkit, src string) (*tools.Result, error) {
			return tk.UpdateLabel(src, args[0], args[1])
		}, nil
	})
}

func (c *CLI) editUnpositionCommand() *cobra.Command {
	return c.simpleEdit("unposition [file] [room]", `Remove a room's "at (x, y)"`, 1, func(args []string) (editAction, error) {
		return func(tk *tools.Toolkit, src string) (*tools.Result, error) {
			return tk.RemovePosition(src, args[0])
		}, nil
	})
}

func (c *CLI) editPlaceCommand() *cobra.Command {
	var (
		out   output
		gap   float64
		align string
	)
	cmd := &cobra.Command{
		Use:   "place [file] [room] [direction] [reference]",
		Short: "Position a room relative to another, e.g. right-of Kitchen",
		Long: `Replace a room's absolute position with a relative clause.

Directions: right-of, left-of, above, below, above-left-of, above-right-of,
below-left-of, below-right-of. Alignments: top, bottom, left, right, center.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := spatial.ParseDirection(args[2])
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unknown direction %q", args[2])
			}
			alignment, ok := spatial.ParseAlignment(align)
			if !ok || !alignment.ValidFor(dir) {
				return errors.New(errors.ErrCodeInvalidInput, "alignment %q does not apply to %s", align, dir)
			}
			return c.runEdit(args[0], out, func(tk *tools.Toolkit, src string) (*tools.Result, error) {
				return tk.SetRelativePosition(src, args[1], dir, args[3], gap, alignment)
			})
		},
	}
	cmd.Flags().Float64Var(&gap, "gap", 0, "distance between the rooms")
	cmd.Flags().StringVar(&align, "align", "", "edge alignment (default: top for left/right, left for above/below)")
	out.register(cmd)
	return cmd
}

func (c *CLI) editAddCommand() *cobra.Command {
	var (
		out     output
		at      string
		size    string
		sizeRef string
		walls   []string
		label   string
	)
	cmd := &cobra.Command{
		Use:   "add [file] [floor] [room]",
		Short: "Append a room to a floor",
		Example: `  floorplan edit add house.floorplan Ground Study --at 10,0 --size 4x3 --walls left=door
  floorplan edit add house.floorplan Ground Guest --size-ref Standard`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := dsl.RoomLine{Name: args[2], SizeRef: sizeRef}
			if sizeRef == "" {
				if size == "" {
					return errors.New(errors.ErrCodeInvalidInput, "one of --size or --size-ref is required")
				}
				s, err := parseDims(size)
				if err != nil {
					return err
				}
				line.Size = s
			}
			if at != "" {
				p, err := parsePoint(at)
				if err != nil {
					return err
				}
				line.Position = &p
			}
			w, err := parseWalls(walls)
			if err != nil {
				return err
			}
			line.Walls = w
			if cmd.Flags().Changed("label") {
				line.Label = &label
			}
			return c.runEdit(args[0], out, func(tk *tools.Toolkit, src string) (*tools.Result, error) {
				return tk.AddRoom(src, args[1], line)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "absolute position as X,Y")
	cmd.Flags().StringVar(&size, "size", "", "size as WxH")
	cmd.Flags().StringVar(&sizeRef, "size-ref", "", "size variable name")
	cmd.Flags().StringSliceVar(&walls, "walls", nil, "wall types as side=type (repeatable)")
	cmd.Flags().StringVar(&label, "label", "", "room label")
	cmd.MarkFlagsMutuallyExclusive("size", "size-ref")
	out.register(cmd)
	return cmd
}

// parsePoint parses "X,Y" or "X Y".
func parsePoint(s string) (dsl.Point, error) {
	var p dsl.Point
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		if f := strings.Fields(s); len(f) == 2 {
			xs, ys, ok = f[0], f[1], true
		}
	}
	if !ok {
		return p, errors.New(errors.ErrCodeInvalidInput, "position %q: want X,Y", s)
	}
	var err error
	if p.X, err = parseNumber("x", xs); err != nil {
		return p, err
	}
	p.Y, err = parseNumber("y", ys)
	return p, err
}

func (c *CLI) editPlanCommand() *cobra.Command {
	var out output
	cmd := &cobra.Command{
		Use:   "plan [file] [plan.toml]",
		Short: "Run a batch of edits from a TOML plan",
		Long: `Run the steps of a TOML edit plan in order. Each step sees the document
produced by the previous one; a failing step is reported and skipped.

  [[step]]
  op = "move"
  room = "Kitchen"
  x = 2
  y = 0

  [[step]]
  op = "convert"
  room = "Kitchen"

Ops: add, remove, move, resize, rename, walls, label, relative, unposition,
convert.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := tools.LoadBatch(args[1])
			if err != nil {
				return err
			}
			src, err := c.readSource(args[0])
			if err != nil {
				return err
			}
			res, err := c.toolkit().Run(src, batch)
			if err != nil {
				return err
			}
			failed := 0
			for _, step := range res.Steps {
				if step.OK {
					c.printSuccess("step %d: %s %s", step.Index, step.Op, step.Room)
					continue
				}
				failed++
				for _, msg := range step.Error {
					c.printError("step %d: %s %s: %s", step.Index, step.Op, step.Room, msg)
				}
			}
			if failed == len(res.Steps) {
				return errors.New(errors.ErrCodeNotApplicable, "no step applied")
			}
			return c.emit(out, args[0], res.Text)
		},
	}
	out.register(cmd)
	return cmd
}
