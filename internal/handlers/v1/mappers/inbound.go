package mappers

import (
	"github.com/samber/lo"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/service/mappers"
)

// UploadRequest is the part of the upload form that is validated before the
// file is streamed.
type UploadRequest struct {
	Name     string `form:"name" validate:"required,max=250,assumption_name"`
	Filename string `form:"excel_file" validate:"required,excel_ext"`
}

type AssumptionUpdateRequest struct {
	Status       *string `json:"status" validate:"omitempty,assumption_status"`
	StatusDetail *string `json:"status_detail"`
	DownloadLink *string `json:"download_link" validate:"omitempty,max=1024"`
}

func AssumptionUpdateFromApi(body api.AssumptionUpdate) AssumptionUpdateRequest {
	req := AssumptionUpdateRequest{
		StatusDetail: body.StatusDetail,
		DownloadLink: body.DownloadLink,
	}
	if body.Status != nil {
		req.Status = lo.ToPtr(string(*body.Status))
	}
	return req
}

// Empty reports whether the update would change nothing.
func (a AssumptionUpdateRequest) Empty() bool {
	return a.Status == nil && a.StatusDetail == nil && a.DownloadLink == nil
}

func (a AssumptionUpdateRequest) ToForm() mappers.AssumptionUpdateForm {
	return mappers.AssumptionUpdateForm{
		Status:       a.Status,
		StatusDetail: a.StatusDetail,
		DownloadLink: a.DownloadLink,
	}
}

type SimulationCreateRequest struct {
	RunID      string  `json:"run_id" validate:"omitempty,max=64,run_id"`
	Name       string  `json:"name" validate:"required,max=250"`
	Assumption *string `json:"assumption" validate:"omitempty,max=250,assumption_name"`
	Status     string  `json:"status" validate:"omitempty,max=32"`
}

func SimulationCreateFromApi(body api.SimulationCreate) SimulationCreateRequest {
	return SimulationCreateRequest{
		RunID:      lo.FromPtr(body.RunId),
		Name:       body.Name,
		Assumption: body.Assumption,
		Status:     lo.FromPtr(body.Status),
	}
}

func (s SimulationCreateRequest) ToForm() mappers.SimulationForm {
	return mappers.SimulationForm{
		RunID:          s.RunID,
		Name:           s.Name,
		AssumptionName: s.Assumption,
		Status:         s.Status,
	}
}

// SimulationUpdateRequest replaces the assumption reference; empty name and
// status keep their current value.
type SimulationUpdateRequest struct {
	Name       string  `json:"name" validate:"omitempty,max=250"`
	Assumption *string `json:"assumption" validate:"omitempty,max=250,assumption_name"`
	Status     string  `json:"status" validate:"omitempty,max=32"`
}

func SimulationUpdateFromApi(body api.SimulationUpdate) SimulationUpdateRequest {
	return SimulationUpdateRequest{
		Name:       lo.FromPtr(body.Name),
		Assumption: body.Assumption,
		Status:     lo.FromPtr(body.Status),
	}
}

func (s SimulationUpdateRequest) ToForm() mappers.SimulationForm {
	return mappers.SimulationForm{
		Name:           s.Name,
		AssumptionName: s.Assumption,
		Status:         s.Status,
	}
}
