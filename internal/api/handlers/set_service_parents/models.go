package set_service_parents

// SetParentsRequest HTTP request model
type SetParentsRequest struct {
	ParentIDs []int64 `json:"parentIds"`
}

// ParentsResponse HTTP response model
type ParentsResponse struct {
	ServiceID int64   `json:"serviceId"`
	ParentIDs []int64 `json:"parentIds"`
}
