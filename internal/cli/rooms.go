package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/dsl"
	fpio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/resolve"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

// roomsCommand lists every room with its placement and resolved bounds.
func (c *CLI) roomsCommand() *cobra.Command {
	var floorName string

	cmd := &cobra.Command{
		Use:   "rooms [file]",
		Short: "List rooms with their placement and resolved position",
		Long: `List the rooms of a floorplan document.

For each top-level room the table shows how it is placed in the source
(absolute "at (x, y)" or a relative clause) and where it ends up once
relative positions are resolved. Sub-rooms are listed under their parent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRooms(args[0], floorName)
		},
	}
	cmd.Flags().StringVar(&floorName, "floor", "", "only list rooms on this floor")
	return cmd
}

func (c *CLI) runRooms(path, floorName string) error {
	_, doc, err := c.readDocument(path)
	if err != nil {
		return err
	}

	shown := 0
	for _, floor := range doc.Floors {
		if floorName != "" && floor.Name != floorName {
			continue
		}
		shown++
		layout, err := resolve.Floor(doc, floor)
		if err != nil {
			return err
		}

		var rows [][]string
		for _, r := range floor.Rooms {
			rows = append(rows, roomRow(r, "", layout))
			for _, sub := range r.SubRooms {
				rows = append(rows, roomRow(sub, "└ ", nil))
			}
		}
		c.printTable("floor "+floor.Name, []string{"Room", "Placement", "Resolved", "Size", "Label"}, rows, nil)
		for _, name := range layout.Unresolved {
			c.printWarning("%s cannot be placed", name)
		}
	}
	if floorName != "" && shown == 0 {
		return fmt.Errorf("no floor named %q", floorName)
	}
	return nil
}

func roomRow(r *dsl.Room, prefix string, layout *resolve.Layout) []string {
	resolved := iconNone
	size := sizeText(r)
	if layout != nil {
		if b, ok := layout.Rooms[r.Name]; ok {
			resolved = pointText(b.X, b.Y)
			size = dsl.FormatDims(dsl.Size{Width: b.Width, Height: b.Height})
		}
	}
	label := ""
	if r.Label != nil {
		label = *r.Label
	}
	return []string{prefix + r.Name, placementText(r), resolved, size, label}
}

func placementText(r *dsl.Room) string {
	switch {
	case r.Relative != nil:
		return r.Relative.Node.Text
	case r.Position != nil:
		return dsl.FormatPosition(*r.Position)
	}
	return iconNone
}

func sizeText(r *dsl.Room) string {
	if r.Size != nil {
		return dsl.FormatDims(*r.Size)
	}
	return r.SizeRef
}

func pointText(x, y float64) string {
	return fmt.Sprintf("(%s, %s)", dsl.FormatNumber(x), dsl.FormatNumber(y))
}

// relationsCommand shows how one room relates to its neighbours.
func (c *CLI) relationsCommand() *cobra.Command {
	var (
		tolerance float64
		maxGap    float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "relations [file] [room]",
		Short: "Show how a room relates to the other rooms on its floor",
		Long: `Show every spatial relationship between a room and the other top-level
rooms on its floor, best first. The first line is the relative position
"relative" would choose if the room were converted on its own.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk := c.toolkit()
			if cmd.Flags().Changed("tolerance") {
				tk.Tolerance = tolerance
			}
			if cmd.Flags().Changed("max-gap") {
				tk.MaxGap = maxGap
			}
			src, err := c.readSource(args[0])
			if err != nil {
				return err
			}
			rels, err := tk.Relations(src, args[1])
			if err != nil {
				return err
			}
			if asJSON {
				return fpio.WriteRelations(args[1], rels, c.Out)
			}
			if len(rels) == 0 {
				c.printInfo("%s has no neighbours within range", args[1])
				return nil
			}
			c.printTable(args[1], []string{"Reference", "Direction", "Gap", "Align", "Score"}, relationRows(rels), func(row int) bool { return row == 0 })
			return nil
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "adjacency tolerance (default from config)")
	cmd.Flags().Float64Var(&maxGap, "max-gap", 0, "ignore neighbours further away than this (0 = unlimited)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the relationships as JSON")
	return cmd
}

func relationRows(rels []spatial.Relationship) [][]string {
	rows := make([][]string, len(rels))
	for i, r := range rels {
		align := string(r.Alignment)
		if align == "" {
			align = iconNone
		}
		rows[i] = []string{r.Reference, string(r.Direction), dsl.FormatNumber(r.Gap), align, dsl.FormatNumber(r.Score)}
	}
	return rows
}
