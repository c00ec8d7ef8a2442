package relative_test

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/relative"
	"github.com/matzehuels/floorplan/pkg/spatial"
)

func ExampleConvert() {
	doc, err := dsl.Parse(`floorplan {
  floor ground {
    room Kitchen at (0, 0) size (10 x 8) walls [top: solid]
    room Pantry at (10, 0) size (4 x 8) walls [left: door]
    room Hall at (0, 8) size (14 x 2) walls [top: open]
  }
}`)
	if err != nil {
		panic(err)
	}

	res, err := relative.Convert(doc, "Kitchen", relative.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Text)
	// Output:
	// floorplan {
	//   floor ground {
	//     room Kitchen at (0, 0) size (10 x 8) walls [top: solid]
	//     room Pantry size (4 x 8) walls [left: door] right-of Kitchen
	//     room Hall size (14 x 2) walls [top: open] below Kitchen
	//   }
	// }
}

func ExampleBuild() {
	plan, err := relative.Build([]spatial.Bounds{
		spatial.NewBounds("Kitchen", 0, 0, 10, 8),
		spatial.NewBounds("Pantry", 10, 0, 4, 8),
		spatial.NewBounds("Hall", 0, 8, 14, 2),
	}, "Kitchen", relative.Options{})
	if err != nil {
		panic(err)
	}
	for _, a := range plan.Assignments {
		fmt.Printf("%s %s %s gap %g align %s\n", a.Room, a.Direction, a.Reference, a.Gap, a.Alignment)
	}
	// Output:
	// Pantry right-of Kitchen gap 0 align top
	// Hall below Kitchen gap 0 align left
}
