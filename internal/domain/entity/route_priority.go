package entity

// RoutePriority selects which route the directions provider should favour.
type RoutePriority string

const (
	// PriorityRecommend is the provider's balanced default route.
	PriorityRecommend RoutePriority = "RECOMMEND"
	// PriorityTime favours the fastest route.
	PriorityTime RoutePriority = "TIME"
	// PriorityDistance favours the shortest route.
	PriorityDistance RoutePriority = "DISTANCE"
)

// Valid reports whether the priority is one of the known values.
func (p RoutePriority) Valid() bool {
	switch p {
	case PriorityRecommend, PriorityTime, PriorityDistance:
		return true
	default:
		return false
	}
}
