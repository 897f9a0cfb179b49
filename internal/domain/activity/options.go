package activity

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	UserID    string
	ProjectID *string
	Type      *Type
	Limit     int
	Offset    int
}
