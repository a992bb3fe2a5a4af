package dto

// StatsDTO is the combined result of the four independent count queries.
type StatsDTO struct {
	Pending      int64 `json:"pending"`
	InProgress   int64 `json:"inProgress"`
	Completed    int64 `json:"completed"`
	TotalClients int64 `json:"totalClients"`
}
