package service

import (
	"fmt"
	"strings"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id string, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrAssumptionNotFound(name string) *ErrResourceNotFound {
	return NewErrResourceNotFound(name, "assumption")
}

func NewErrSimulationNotFound(id uint) *ErrResourceNotFound {
	return NewErrResourceNotFound(fmt.Sprint(id), "simulation")
}

func NewErrSimulationLogNotFound(id uint) *ErrResourceNotFound {
	return NewErrResourceNotFound(fmt.Sprint(id), "simulation log")
}

func NewErrOutputNotFound(name string) *ErrResourceNotFound {
	return NewErrResourceNotFound(name, "output of assumption")
}

type ErrInvalidStatus struct {
	error
}

func NewErrInvalidStatus(status string) *ErrInvalidStatus {
	valid := []string{string(model.AssumptionStatusProcessing), string(model.AssumptionStatusSuccess), string(model.AssumptionStatusError)}
	return &ErrInvalidStatus{fmt.Errorf("invalid status %q: must be one of %s", status, strings.Join(valid, ", "))}
}

type ErrDuplicateRunID struct {
	error
}

func NewErrDuplicateRunID(runID string) *ErrDuplicateRunID {
	return &ErrDuplicateRunID{fmt.Errorf("simulation with run id %q already exists", runID)}
}

type ErrOutputNotAvailable struct {
	error
}

func NewErrOutputNotAvailable(name string, status model.AssumptionStatus) *ErrOutputNotAvailable {
	return &ErrOutputNotAvailable{fmt.Errorf("assumption %s has no output: status is %s", name, status)}
}

type ErrInvalidParameter struct {
	error
}

func NewErrInvalidOrderColumn(column string, allowed []string) *ErrInvalidParameter {
	return &ErrInvalidParameter{fmt.Errorf("cannot order by %q: must be one of %s", column, strings.Join(allowed, ", "))}
}

func NewErrPageOutOfRange(page int) *ErrInvalidParameter {
	return &ErrInvalidParameter{fmt.Errorf("page %d is out of range: must be at most %d", page, MaxPage)}
}
