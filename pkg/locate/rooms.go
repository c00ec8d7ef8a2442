package locate

import "github.com/matzehuels/floorplan/pkg/dsl"

// FindRoom searches every floor depth-first, including nested sub-rooms,
// and returns the first room with the given name.
func FindRoom(doc *dsl.Document, name string) (*dsl.Room, bool) {
	for _, r := range AllRooms(doc) {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// FindRoomIn is FindRoom restricted to one floor.
func FindRoomIn(floor *dsl.Floor, name string) (*dsl.Room, bool) {
	for _, r := range FloorRooms(floor) {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// AllRooms returns every room of the document in pre-order: each room is
// followed by its sub-rooms, floors in declaration order.
func AllRooms(doc *dsl.Document) []*dsl.Room {
	var out []*dsl.Room
	for _, f := range doc.Floors {
		out = appendRooms(out, f.Rooms)
	}
	return out
}

// FloorRooms returns the rooms of one floor in pre-order.
func FloorRooms(floor *dsl.Floor) []*dsl.Room {
	return appendRooms(nil, floor.Rooms)
}

func appendRooms(out []*dsl.Room, rooms []*dsl.Room) []*dsl.Room {
	for _, r := range rooms {
		out = append(out, r)
		out = appendRooms(out, r.SubRooms)
	}
	return out
}

// DuplicateNames returns the names declared more than once on a floor,
// sub-rooms included, in order of their second declaration.
func DuplicateNames(floor *dsl.Floor) []string {
	seen := make(map[string]int)
	var out []string
	for _, r := range FloorRooms(floor) {
		seen[r.Name]++
		if seen[r.Name] == 2 {
			out = append(out, r.Name)
		}
	}
	return out
}

// FloorOf returns the floor a top-level room with the given name is
// declared on.
func FloorOf(doc *dsl.Document, name string) (*dsl.Floor, bool) {
	for _, f := range doc.Floors {
		for _, r := range f.Rooms {
			if r.Name == name {
				return f, true
			}
		}
	}
	return nil, false
}

// ReferencesTo returns the rooms whose relative clause names ref.
func ReferencesTo(doc *dsl.Document, ref string) []*dsl.Room {
	return referencing(AllRooms(doc), ref)
}

// ReferencesIn is ReferencesTo restricted to one floor.
func ReferencesIn(floor *dsl.Floor, ref string) []*dsl.Room {
	return referencing(FloorRooms(floor), ref)
}

func referencing(rooms []*dsl.Room, ref string) []*dsl.Room {
	var out []*dsl.Room
	for _, r := range rooms {
		if r.Relative != nil && r.Relative.Reference == ref {
			out = append(out, r)
		}
	}
	return out
}
