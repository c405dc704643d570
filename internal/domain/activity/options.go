package activity

// DefaultLimit caps Recent when no limit is given.
const DefaultLimit = 50

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	Entity string
	ItemID *string
	Action *string
	Limit  int
	Offset int
}
