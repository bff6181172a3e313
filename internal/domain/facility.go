package domain

// Represents a single sports facility from the national equipment dataset.
//
// Field names follow the dataset columns: inst_nom, equip_type_name,
// equip_nature, equip_sol, aps_name, inst_trans_type. A Facility is
// immutable once loaded; the repository guarantees Coord holds a valid
// numeric pair (rows with missing or malformed coordinates are rejected
// at load time).
type Facility struct {
	Name      string
	TypeName  string
	Nature    string
	Surface   string
	Activity  string
	Transport string // free-form, may list several modes ("Bus, Tramway"); empty when unserved
	Coord     Coordinates
}
