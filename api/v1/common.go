package v1

func StringToAssumptionStatus(s string) AssumptionStatus {
	switch s {
	case string(AssumptionStatusSuccess):
		return AssumptionStatusSuccess
	case string(AssumptionStatusError):
		return AssumptionStatusError
	default:
		return AssumptionStatusProcessing
	}
}

func (d *OrderDirection) Descending() bool {
	return d != nil && *d == Desc
}
