package conceptual

// LocationID identifies a viewer location pin.
// Two pins are the same pin only if their ids match;
// coordinates say nothing about identity.
type LocationID string

func (l LocationID) String() string {
	return string(l)
}

func (l LocationID) IsEmpty() bool {
	return l == ""
}

// ClusterID identifies a cluster within one generated tour.
// It is stable for a fixed input.
type ClusterID string

func (c ClusterID) String() string {
	return string(c)
}

func (c ClusterID) IsEmpty() bool {
	return c == ""
}
