package model

type AssumptionStats struct {
	Total    int
	ByStatus map[string]int
}

type Statistics struct {
	Assumptions      AssumptionStats
	TotalValues      int
	TotalSimulations int
	TotalLogs        int
}
